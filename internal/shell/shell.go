/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package shell runs the interactive teller session: menus, prompts and the
// re-prompt loops around the bank's operations.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blnkfinance/teller"
	"github.com/blnkfinance/teller/config"
	"github.com/blnkfinance/teller/internal/render"
	"github.com/blnkfinance/teller/model"
)

// errEndOfInput ends the session when the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

const tracerName = "teller.shell"

type Shell struct {
	bank   *teller.Bank
	in     *bufio.Scanner
	out    io.Writer
	log    logrus.FieldLogger
	render render.Renderer
	tracer trace.Tracer
}

type Option func(*Shell)

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

func WithRenderer(r render.Renderer) Option {
	return func(s *Shell) {
		s.render = r
	}
}

// WithTracerProvider sets where session spans are sent. The global provider
// is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Shell) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

func New(bank *teller.Bank, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		bank:   bank,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    logrus.StandardLogger(),
		render: render.New(config.StatementConfig{}),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the main menu until the customer leaves or input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printf("\n=== MAIN MENU ===\n1. Register customer\n2. Open checking account\n3. Access account\n4. Exit\n")
		choice, err := s.prompt("=> ")
		if err != nil {
			return finish(err)
		}

		switch choice {
		case "1":
			err = s.registerPerson(ctx)
		case "2":
			err = s.openAccount(ctx)
		case "3":
			err = s.accessAccount(ctx)
		case "4":
			s.printf("\nGoodbye!\n")
			return nil
		default:
			s.printf("\nInvalid option.\n")
		}
		if err != nil {
			return finish(err)
		}
	}
}

func finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		return nil
	}
	return err
}

func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ask prompts until valid accepts the answer, printing complaint after each
// rejected one.
func (s *Shell) ask(label string, valid func(string) bool, complaint func(string) string) (string, error) {
	for {
		answer, err := s.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		s.printf("\nError: %s\n", complaint(answer))
	}
}

// reject logs a refused operation, records it on span and tells the customer.
func (s *Shell) reject(span trace.Span, fields logrus.Fields, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(model.CodeOf(err)))
	s.log.WithFields(fields).WithField("code", model.CodeOf(err)).Warn(msg)
	s.fail(err)
}

func (s *Shell) fail(err error) {
	s.printf("\nError: %s\n", s.render.Message(err))
}

func (s *Shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
