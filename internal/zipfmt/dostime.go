package zipfmt

import "time"

// DOSStamp is a modification timestamp in the bit-packed MS-DOS format the
// header fields require: seconds/2, minute and hour in Time; day, month and
// year-since-1980 in Date.
type DOSStamp struct {
	Time uint16
	Date uint16
}

// NewDOSStamp packs t into DOS format. The format has 2-second resolution
// and cannot represent years before 1980; earlier times clamp to the
// 1980-01-01 floor.
func NewDOSStamp(t time.Time) DOSStamp {
	if t.Year() < 1980 {
		t = time.Date(1980, time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return DOSStamp{
		Time: uint16(t.Second()/2) | uint16(t.Minute())<<5 | uint16(t.Hour())<<11,
		Date: uint16(t.Day()) | uint16(t.Month())<<5 | uint16(t.Year()-1980)<<9,
	}
}
