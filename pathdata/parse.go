// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"fmt"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
)

// ParseError reports a failure parsing SVG path data. It carries the
// byte offset of the offending input so callers can build rich
// diagnostics (spec §4.1, §7 "Path data syntax" is fatal to the
// offending element only, never the whole document).
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("path data: %s (at byte %d)", e.Msg, e.Offset)
}

type scanner struct {
	d   string
	pos int
}

func (s *scanner) errf(format string, args ...any) *ParseError {
	return &ParseError{Offset: s.pos, Msg: fmt.Sprintf(format, args...)}
}

func isWS(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', ',':
		return true
	}
	return false
}

func (s *scanner) skipWS() {
	for s.pos < len(s.d) && isWS(s.d[s.pos]) {
		s.pos++
	}
}

func (s *scanner) atEnd() bool {
	s.skipWS()
	return s.pos >= len(s.d)
}

func (s *scanner) peekCommand() (byte, bool) {
	s.skipWS()
	if s.pos >= len(s.d) {
		return 0, false
	}
	c := s.d[s.pos]
	if isCommandByte(c) {
		return c, true
	}
	return 0, false
}

func isCommandByte(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// number scans a single SVG numeric token: an optional sign, digits,
// an optional fractional part, and an optional exponent. A following
// sign that is not part of an exponent acts as an implicit separator,
// per spec §4.1 ("a sign character acts as a separator").
func (s *scanner) number() (float64, error) {
	s.skipWS()
	start := s.pos
	if s.pos < len(s.d) && (s.d[s.pos] == '+' || s.d[s.pos] == '-') {
		s.pos++
	}
	sawDigit := false
	for s.pos < len(s.d) && isDigit(s.d[s.pos]) {
		s.pos++
		sawDigit = true
	}
	if s.pos < len(s.d) && s.d[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.d) && isDigit(s.d[s.pos]) {
			s.pos++
			sawDigit = true
		}
	}
	if !sawDigit {
		return 0, s.errf("expected number")
	}
	if s.pos < len(s.d) && (s.d[s.pos] == 'e' || s.d[s.pos] == 'E') {
		save := s.pos
		s.pos++
		if s.pos < len(s.d) && (s.d[s.pos] == '+' || s.d[s.pos] == '-') {
			s.pos++
		}
		expDigits := false
		for s.pos < len(s.d) && isDigit(s.d[s.pos]) {
			s.pos++
			expDigits = true
		}
		if !expDigits {
			s.pos = save // not actually an exponent
		}
	}
	tok := s.d[start:s.pos]
	var v float64
	if _, err := fmt.Sscanf(tok, "%g", &v); err != nil {
		return 0, s.errf("invalid number %q", tok)
	}
	return v, nil
}

// flag scans a single SVG flag digit (0 or 1), used for arc large-arc
// and sweep flags, which are not separated by whitespace from a
// following coordinate in practice.
func (s *scanner) flag() (bool, error) {
	s.skipWS()
	if s.pos >= len(s.d) {
		return false, s.errf("expected flag")
	}
	c := s.d[s.pos]
	if c != '0' && c != '1' {
		return false, s.errf("expected flag (0 or 1), got %q", c)
	}
	s.pos++
	return c == '1', nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// upperCmd canonicalizes a command byte to its upper-case family letter,
// so smooth-control reflection can compare case-insensitively.
func upperCmd(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// moreArgs reports whether another numeric argument follows for the
// current command (i.e. no new command letter and input remains),
// implementing implicit command repetition.
func (s *scanner) moreArgs() bool {
	s.skipWS()
	if s.pos >= len(s.d) {
		return false
	}
	c := s.d[s.pos]
	if isCommandByte(c) {
		return false
	}
	return true
}

// Parse parses SVG path `d` grammar into subpaths. An empty d returns
// an empty, non-error result (spec §4.1 edge case).
func Parse(d string) ([]Subpath, error) {
	s := &scanner{d: d}
	var subpaths []Subpath
	var cur, subpathStart geom.Point
	var lastCmd byte
	var lastCubicC2, lastQuadC geom.Point

	appendSeg := func(seg Segment) {
		if len(subpaths) == 0 {
			subpaths = append(subpaths, Subpath{})
		}
		last := &subpaths[len(subpaths)-1]
		last.Segments = append(last.Segments, seg)
	}

	for !s.atEnd() {
		cmd, ok := s.peekCommand()
		if !ok {
			return nil, s.errf("unknown command %q", s.d[s.pos])
		}
		s.pos++
		effCmd := cmd

		switch cmd {
		case 'M', 'm':
			first := true
			for first || s.moreArgs() {
				x, err := s.number()
				if err != nil {
					return nil, err
				}
				y, err := s.number()
				if err != nil {
					return nil, err
				}
				p := geom.Point{X: x, Y: y}
				if cmd == 'm' {
					p = cur.Add(p)
				}
				if first {
					subpaths = append(subpaths, Subpath{})
					subpathStart = p
				} else {
					// Subsequent coordinate pairs after M are implicit L/l.
					appendSeg(Line(cur, p))
				}
				cur = p
				first = false
			}
			effCmd = map[byte]byte{'M': 'L', 'm': 'l'}[byte(effCmd)]
			lastCmd = upperCmd(effCmd)
			continue

		case 'L', 'l':
			for {
				x, err := s.number()
				if err != nil {
					return nil, err
				}
				y, err := s.number()
				if err != nil {
					return nil, err
				}
				p := geom.Point{X: x, Y: y}
				if cmd == 'l' {
					p = cur.Add(p)
				}
				appendSeg(Line(cur, p))
				cur = p
				if !s.moreArgs() {
					break
				}
			}

		case 'H', 'h':
			for {
				x, err := s.number()
				if err != nil {
					return nil, err
				}
				p := cur
				if cmd == 'h' {
					p.X += x
				} else {
					p.X = x
				}
				appendSeg(Line(cur, p))
				cur = p
				if !s.moreArgs() {
					break
				}
			}

		case 'V', 'v':
			for {
				y, err := s.number()
				if err != nil {
					return nil, err
				}
				p := cur
				if cmd == 'v' {
					p.Y += y
				} else {
					p.Y = y
				}
				appendSeg(Line(cur, p))
				cur = p
				if !s.moreArgs() {
					break
				}
			}

		case 'C', 'c':
			for {
				c1, c2, end, err := s.readCubicArgs(cur, cmd == 'c')
				if err != nil {
					return nil, err
				}
				appendSeg(Cubic(cur, c1, c2, end))
				cur = end
				lastCubicC2 = c2
				if !s.moreArgs() {
					break
				}
			}

		case 'S', 's':
			for {
				c1 := cur
				if lastCmd == 'C' || lastCmd == 'S' {
					c1 = cur.Scale(2).Sub(lastCubicC2)
				}
				c2, end, err := s.readSmoothCubicArgs(cur, cmd == 's')
				if err != nil {
					return nil, err
				}
				appendSeg(Cubic(cur, c1, c2, end))
				cur = end
				lastCubicC2 = c2
				if !s.moreArgs() {
					break
				}
				lastCmd = upperCmd(effCmd)
			}

		case 'Q', 'q':
			for {
				qc, end, err := s.readQuadArgs(cur, cmd == 'q')
				if err != nil {
					return nil, err
				}
				c1, c2 := quadToCubicControls(cur, qc, end)
				appendSeg(Cubic(cur, c1, c2, end))
				cur = end
				lastQuadC = qc
				if !s.moreArgs() {
					break
				}
			}

		case 'T', 't':
			for {
				qc := cur
				if lastCmd == 'Q' || lastCmd == 'T' {
					qc = cur.Scale(2).Sub(lastQuadC)
				}
				x, err := s.number()
				if err != nil {
					return nil, err
				}
				y, err := s.number()
				if err != nil {
					return nil, err
				}
				end := geom.Point{X: x, Y: y}
				if cmd == 't' {
					end = cur.Add(end)
				}
				c1, c2 := quadToCubicControls(cur, qc, end)
				appendSeg(Cubic(cur, c1, c2, end))
				cur = end
				lastQuadC = qc
				if !s.moreArgs() {
					break
				}
				lastCmd = upperCmd(effCmd)
			}

		case 'A', 'a':
			for {
				rx, err := s.number()
				if err != nil {
					return nil, err
				}
				ry, err := s.number()
				if err != nil {
					return nil, err
				}
				rot, err := s.number()
				if err != nil {
					return nil, err
				}
				large, err := s.flag()
				if err != nil {
					return nil, err
				}
				sweep, err := s.flag()
				if err != nil {
					return nil, err
				}
				x, err := s.number()
				if err != nil {
					return nil, err
				}
				y, err := s.number()
				if err != nil {
					return nil, err
				}
				end := geom.Point{X: x, Y: y}
				if cmd == 'a' {
					end = cur.Add(end)
				}
				segs := ArcToCubics(cur, end, rx, ry, rot, large, sweep)
				for _, sg := range segs {
					appendSeg(sg)
				}
				cur = end
				if !s.moreArgs() {
					break
				}
			}

		case 'Z', 'z':
			if cur != subpathStart {
				appendSeg(Line(cur, subpathStart))
			}
			if len(subpaths) > 0 {
				subpaths[len(subpaths)-1].Closed = true
			}
			cur = subpathStart

		default:
			return nil, s.errf("unknown command %q", cmd)
		}

		lastCmd = upperCmd(effCmd)
	}

	return subpaths, nil
}

func (s *scanner) readCubicArgs(cur geom.Point, rel bool) (c1, c2, end geom.Point, err error) {
	vals := make([]float64, 6)
	for i := range vals {
		vals[i], err = s.number()
		if err != nil {
			return
		}
	}
	c1 = geom.Point{X: vals[0], Y: vals[1]}
	c2 = geom.Point{X: vals[2], Y: vals[3]}
	end = geom.Point{X: vals[4], Y: vals[5]}
	if rel {
		c1 = cur.Add(c1)
		c2 = cur.Add(c2)
		end = cur.Add(end)
	}
	return
}

func (s *scanner) readSmoothCubicArgs(cur geom.Point, rel bool) (c2, end geom.Point, err error) {
	vals := make([]float64, 4)
	for i := range vals {
		vals[i], err = s.number()
		if err != nil {
			return
		}
	}
	c2 = geom.Point{X: vals[0], Y: vals[1]}
	end = geom.Point{X: vals[2], Y: vals[3]}
	if rel {
		c2 = cur.Add(c2)
		end = cur.Add(end)
	}
	return
}

func (s *scanner) readQuadArgs(cur geom.Point, rel bool) (qc, end geom.Point, err error) {
	vals := make([]float64, 4)
	for i := range vals {
		vals[i], err = s.number()
		if err != nil {
			return
		}
	}
	qc = geom.Point{X: vals[0], Y: vals[1]}
	end = geom.Point{X: vals[2], Y: vals[3]}
	if rel {
		qc = cur.Add(qc)
		end = cur.Add(end)
	}
	return
}

// quadToCubicControls converts a quadratic Bezier (start, ctrl, end) to
// the equivalent cubic's control points, per spec §4.1.
func quadToCubicControls(start, ctrl, end geom.Point) (c1, c2 geom.Point) {
	const k = 2.0 / 3.0
	c1 = start.Add(ctrl.Sub(start).Scale(k))
	c2 = end.Add(ctrl.Sub(end).Scale(k))
	return
}
