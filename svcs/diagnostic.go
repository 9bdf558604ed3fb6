// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svcs

import "fmt"

// Severity classifies a Diagnostic (spec §7).
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Code names a recognized diagnostic condition from spec §7's error
// table, so callers can filter/aggregate programmatically rather than
// string-matching messages.
type Code string

const (
	CodeMalformedXML        Code = "malformed_xml"
	CodePathSyntax          Code = "path_syntax"
	CodeUnknownElement      Code = "unknown_element"
	CodeMissingReference    Code = "missing_reference"
	CodeCyclicReference     Code = "cyclic_reference"
	CodeEMFFailure          Code = "emf_failure"
	CodeFilterFallback      Code = "filter_fallback"
	CodePackagerIO          Code = "packager_io"
	CodePolicyAssertion     Code = "policy_assertion"
	CodeAnimationUnresolved Code = "animation_unresolved"
)

// Diagnostic is one accumulated, non-fatal (or pre-abort) record of the
// conversion. Per spec §7, "Diagnostics accumulate into a per-request
// collection exposed alongside the output bytes; they never mutate the
// output. There are no silent data losses — every dropped element is
// named."
type Diagnostic struct {
	Severity    Severity
	Code        Code
	Message     string
	ElementPath string
}

// Diagnostics is an accumulator. The zero value is ready to use.
type Diagnostics struct {
	items []Diagnostic
}

// Add appends d to the collection.
func (d *Diagnostics) Add(sev Severity, code Code, elementPath, message string) {
	d.items = append(d.items, Diagnostic{Severity: sev, Code: code, ElementPath: elementPath, Message: message})
}

// Warnf adds a SeverityWarning diagnostic.
func (d *Diagnostics) Warnf(code Code, elementPath, format string, args ...any) {
	d.Add(SeverityWarning, code, elementPath, fmt.Sprintf(format, args...))
}

// Errorf adds a SeverityError diagnostic.
func (d *Diagnostics) Errorf(code Code, elementPath, format string, args ...any) {
	d.Add(SeverityError, code, elementPath, fmt.Sprintf(format, args...))
}

// Infof adds a SeverityInfo diagnostic.
func (d *Diagnostics) Infof(code Code, elementPath, format string, args ...any) {
	d.Add(SeverityInfo, code, elementPath, fmt.Sprintf(format, args...))
}

// All returns every accumulated diagnostic, in order.
func (d *Diagnostics) All() []Diagnostic { return append([]Diagnostic(nil), d.items...) }

// HasErrors reports whether any SeverityError diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, it := range d.items {
		if it.Severity == SeverityError {
			return true
		}
	}
	return false
}
