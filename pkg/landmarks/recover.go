// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package landmarks

import "runtime/debug"

// PanicError wraps a value recovered from a Handler or core panic during
// SafeParse, along with a stack trace captured at the recovery site.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return "landmarks: parse panicked: " + err.Error()
	}
	return "landmarks: parse panicked"
}

// Unwrap exposes the underlying value when it is itself an error, so
// errors.As/errors.Is can see through a PanicError to the handler's own
// error type.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// SafeParse runs a Tokenizer to completion like Parse, but recovers any
// panic raised by the Handler or the core itself and reports it as a
// *PanicError instead of letting it unwind the caller's stack.
//
// Parse itself never recovers (deliberately: a Handler that wants to stop
// early panics, and the driver must not catch it). SafeParse exists for
// callers that want ordinary error-return semantics at the outermost call
// boundary instead — it is a convenience wrapper, not a different parsing
// mode.
func SafeParse(t *Tokenizer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	t.Parse()
	return nil
}
