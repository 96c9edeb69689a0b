/*
   Copyright 2025 The DIRPX Authors

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

// Package boundary is the point where shapes cross into or out of a request
// executor. A Checker validates shapes against their constraint tables,
// logs every violation with zap and encodes or decodes the wire payload.
//
// Shapes themselves never log; the Checker logs them through Redacted only.
package boundary

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"

	"dirpx.dev/smapi/smcore/errors"
	"dirpx.dev/smapi/smcore/model"
	"dirpx.dev/smapi/smcore/schema"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrUnregistered is returned for a shape whose table is missing from the
// registry configured with WithRegistry.
var ErrUnregistered = stderrors.New("boundary: shape is not registered")

// Checker validates shapes at the executor boundary. It is read-only after
// New and safe for concurrent use.
type Checker struct {
	logger   *zap.Logger
	registry *schema.Registry
	strict   bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegistry restricts the Checker to shapes whose table is registered in
// r.
func WithRegistry(r *schema.Registry) Option {
	return func(c *Checker) { c.registry = r }
}

// WithStrict selects whether constraint violations are returned as errors
// (the default) or only logged.
func WithStrict(strict bool) Option {
	return func(c *Checker) { c.strict = strict }
}

// New returns a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{
		logger: zap.NewNop(),
		strict: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// isNil reports whether m is nil or a nil pointer to a shape. Generated
// shapes accept nil receivers, so a typed nil would otherwise validate and
// encode as null.
func isNil(m model.Model) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Check validates m and logs each violation at warn level. In strict mode
// the violations are returned wrapped with the shape name; otherwise Check
// returns nil once they are logged.
//
// A nil shape, including a nil *T, fails with errors.ErrInvalidArgument. A
// shape unknown to the configured registry always fails with
// ErrUnregistered, whatever the mode.
func (c *Checker) Check(m model.Model) error {
	if isNil(m) {
		return fmt.Errorf("boundary: nil shape: %w", errors.ErrInvalidArgument)
	}
	name := m.TypeName()

	if c.registry != nil {
		qualified, ok := c.registry.NameOf(m.Schema())
		if !ok {
			c.logger.Error("shape not registered",
				zap.String("shape", name),
				zap.String("schema_version", c.registry.Version().String()),
			)
			return fmt.Errorf("%w: %s", ErrUnregistered, name)
		}
		name = qualified
	}

	err := m.Validate()
	if err == nil {
		c.logger.Debug("shape accepted", zap.String("shape", name))
		return nil
	}

	for _, e := range multierr.Errors(err) {
		fields := []zap.Field{zap.String("shape", name)}
		var ve *errors.ValidationError
		if stderrors.As(e, &ve) {
			fields = append(fields,
				zap.String("field", ve.Field),
				zap.String("reason", ve.Reason),
			)
		} else {
			fields = append(fields, zap.Error(e))
		}
		c.logger.Warn("shape constraint violated", fields...)
	}
	c.logger.Info("shape rejected",
		zap.String("shape", name),
		zap.Int("violations", len(multierr.Errors(err))),
		zap.String("payload", m.Redacted()),
		zap.Bool("strict", c.strict),
	)

	if !c.strict {
		return nil
	}
	return fmt.Errorf("boundary: %s: %w", name, err)
}

// CheckAll checks every shape and combines the failures.
func (c *Checker) CheckAll(shapes ...model.Model) error {
	var errs error
	for _, m := range shapes {
		errs = multierr.Append(errs, c.Check(m))
	}
	return errs
}

// Encode checks m and returns its JSON payload. Encoding refuses invalid
// shapes even when the Checker is not strict, since marshaling validates.
func (c *Checker) Encode(m model.Model) ([]byte, error) {
	if err := c.Check(m); err != nil {
		return nil, err
	}
	data, err := model.ToJSON(m)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("shape encoded",
		zap.String("shape", m.TypeName()),
		zap.Int("bytes", len(data)),
	)
	return data, nil
}

// Decode fills m from a JSON payload and then checks it. The Checker's mode
// decides whether a response that violates its table is an error.
func (c *Checker) Decode(data []byte, m model.Model) error {
	if isNil(m) {
		return fmt.Errorf("boundary: nil shape: %w", errors.ErrInvalidArgument)
	}
	if err := json.Unmarshal(data, m); err != nil {
		c.logger.Error("shape decode failed",
			zap.String("shape", m.TypeName()),
			zap.Error(err),
		)
		return &errors.UnmarshalError{Type: m.TypeName(), Data: data, Reason: err.Error()}
	}
	return c.Check(m)
}
