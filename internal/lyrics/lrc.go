// Package lyrics finds, caches and parses song lyrics.
package lyrics

import (
	"bufio"
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Line is one lyric line. Time is zero for unsynced lyrics.
type Line struct {
	Time time.Duration
	Text string
}

// Lyrics holds parsed lines in playback order.
type Lyrics struct {
	Lines []Line
}

var (
	// [mm:ss], [mm:ss.xx], [mm:ss.xxx] or [mm:ss:xx]
	stampRe = regexp.MustCompile(`\[(\d+):(\d{1,2})(?:[.:](\d{1,3}))?\]`)
	// [ar:...], [ti:...], [length:...] and friends
	tagRe = regexp.MustCompile(`^\[[a-z#]+:[^\]]*\]$`)
)

// ParseLRC parses LRC content. Lines repeated under several timestamps
// appear once per timestamp. Metadata tags and untimed lines are dropped.
func ParseLRC(content string) *Lyrics {
	l := &Lyrics{}
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || tagRe.MatchString(raw) {
			continue
		}
		stamps := stampRe.FindAllStringSubmatchIndex(raw, -1)
		if len(stamps) == 0 {
			continue
		}
		text := strings.TrimSpace(raw[stamps[len(stamps)-1][1]:])
		for _, m := range stamps {
			l.Lines = append(l.Lines, Line{Time: stampAt(raw, m), Text: text})
		}
	}
	slices.SortStableFunc(l.Lines, func(a, b Line) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return l
}

// ParsePlain splits unsynced lyrics into lines, keeping blank stanza breaks
// but collapsing runs of them.
func ParsePlain(content string) *Lyrics {
	l := &Lyrics{}
	blank := true
	for line := range strings.SplitSeq(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				l.Lines = append(l.Lines, Line{})
			}
			blank = true
			continue
		}
		blank = false
		l.Lines = append(l.Lines, Line{Text: line})
	}
	if n := len(l.Lines); n > 0 && l.Lines[n-1].Text == "" {
		l.Lines = l.Lines[:n-1]
	}
	return l
}

func stampAt(s string, m []int) time.Duration {
	minutes, _ := strconv.Atoi(s[m[2]:m[3]])
	seconds, _ := strconv.Atoi(s[m[4]:m[5]])
	d := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if m[6] >= 0 {
		frac := s[m[6]:m[7]]
		n, _ := strconv.Atoi(frac)
		switch len(frac) {
		case 1:
			d += time.Duration(n) * 100 * time.Millisecond
		case 2:
			d += time.Duration(n) * 10 * time.Millisecond
		default:
			d += time.Duration(n) * time.Millisecond
		}
	}
	return d
}

// IsSynced reports whether any line carries a timestamp.
func (l *Lyrics) IsSynced() bool {
	return slices.ContainsFunc(l.Lines, func(line Line) bool { return line.Time > 0 })
}

// LineAt returns the index of the line being sung at pos, or -1 before the
// first line and for unsynced lyrics.
func (l *Lyrics) LineAt(pos time.Duration) int {
	if !l.IsSynced() {
		return -1
	}
	idx := -1
	for i, line := range l.Lines {
		if line.Time > pos {
			break
		}
		idx = i
	}
	return idx
}

// Text joins the lines with newlines.
func (l *Lyrics) Text() string {
	var b strings.Builder
	for i, line := range l.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.Text)
	}
	return b.String()
}

// FormatStamp renders d as an LRC timestamp, mm:ss.xx.
func FormatStamp(d time.Duration) string {
	d = max(d, 0)
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}
