/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify it
under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or (at your
option) any later version.

This program is distributed in the hope that it will be useful, but
WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public
License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package simlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Diag wraps a structured zerolog.Logger behind the four severities a
// simulation run cares about, tagged per run.
type Diag struct {
	log zerolog.Logger
}

// NewDiag builds a Diag writing to w at the given minimum level. Pass
// os.Stderr and zerolog.InfoLevel for the CLI's default behavior.
func NewDiag(w io.Writer, level zerolog.Level) *Diag {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Diag{log: logger}
}

// With returns a Diag whose every entry carries the given key/value.
func (d *Diag) With(key string, value string) *Diag {
	return &Diag{log: d.log.With().Str(key, value).Logger()}
}

func (d *Diag) Debug(msg string, kv ...any) { d.event(d.log.Debug(), msg, kv) }
func (d *Diag) Info(msg string, kv ...any)  { d.event(d.log.Info(), msg, kv) }
func (d *Diag) Warn(msg string, kv ...any)  { d.event(d.log.Warn(), msg, kv) }
func (d *Diag) Error(err error, msg string, kv ...any) {
	d.event(d.log.Error().Err(err), msg, kv)
}

func (d *Diag) event(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}
