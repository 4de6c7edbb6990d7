// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

// Package htmlfile is a Sink that renders a well-formed HTML5 document,
// one <span style="..."> per styled run of every message, <br/> for line
// breaks.
package htmlfile

import (
	"io"
	"os"

	"github.com/inaneverb/ekalog"
)

const docHeader = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>ekalog</title>
<style>body{background:#1e1e1e;color:#d4d4d4;font-family:monospace;white-space:pre-wrap}</style>
</head><body>
`

const docFooter = `</body></html>
`

// Sink writes one HTML5 document, opened on the first WriteOne and closed
// by Close; the header/footer wrap every rendered line.
type Sink struct {
	path      string
	f         *os.File
	formatter *ekalog.Formatter
}

// New builds an htmlfile Sink that (re)creates path on first write.
func New(path string, formatter *ekalog.Formatter) *Sink {
	if formatter == nil {
		formatter = ekalog.NewFormatter(ekalog.PresetDefault, nil)
	}
	return &Sink{path: path, formatter: formatter}
}

func (s *Sink) ensureOpen() error {
	if s.f != nil {
		return nil
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	s.f = f
	_, err = io.WriteString(s.f, docHeader)
	return err
}

// WriteOne renders msg to an HTML fragment and writes it followed by
// <br/>, opening the document on the first call.
func (s *Sink) WriteOne(msg ekalog.LogMessage, _ ekalog.LogText) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	line := s.formatter.Format(msg)
	_, err := io.WriteString(s.f, ekalog.RenderHTML(line)+"<br/>\n")
	return err
}

// Flush syncs the underlying file to disk.
func (s *Sink) Flush() error {
	if s.f == nil {
		return nil
	}
	return s.f.Sync()
}

// Close writes the document footer and closes the file.
func (s *Sink) Close() error {
	if s.f == nil {
		return nil
	}
	_, werr := io.WriteString(s.f, docFooter)
	cerr := s.f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
