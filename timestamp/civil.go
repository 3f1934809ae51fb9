// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

// proleptic Gregorian calendar arithmetic
//
// the pair below converts between civil dates and a day count from the
// epoch, correct for leap years over the whole representable range;
// the algorithms are the classic era/day-of-era decomposition over the
// 400 year (146097 day) Gregorian cycle

const secondsPerDay = 86400

// days from the civil epoch 1970-01-01 to year/month/day
// month is zero based (0 = January)
func epochDays(year int, month int, day int) int64 {
	m := month + 1
	y := year
	if m <= 2 {
		y -= 1
	}

	// era: floor(y / 400)
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400

	yoe := y - era*400 // year of era [0, 399]

	// day of year with March as month zero
	mp := m - 3
	if m <= 2 {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + day - 1

	doe := yoe*365 + yoe/4 - yoe/100 + doy // day of era [0, 146096]

	return int64(era)*146097 + int64(doe) - 719468
}

// civil date for a day count from the epoch 1970-01-01
// month is one based (1 = January), only called for non-negative days
func civilFromDays(days int64) (year int, month int, day int) {
	z := days + 719468
	era := z / 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	day = int(doy - (153*mp+2)/5 + 1)
	month = int(mp + 3)
	if mp >= 10 {
		month = int(mp - 9)
	}
	year = int(yoe + era*400)
	if month <= 2 {
		year += 1
	}
	return year, month, day
}
