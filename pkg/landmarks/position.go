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

// Position is a byte offset into a source document.
type Position int

// NPOS is the sentinel Position meaning "not found" or "incomplete".
//
// A negative value is used rather than, say, len(source) or math.MaxInt:
// it can never collide with a real offset regardless of document length,
// and reads naturally at call sites (if pos == NPOS).
const NPOS Position = -1
