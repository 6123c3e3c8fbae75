/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package entities

import "context"

// OutputWriter hands the results of a handler to the next stage.
type OutputWriter[T any] struct {
	ch      chan *T
	written int
}

func NewOutputWriter[T any](ch chan *T) *OutputWriter[T] {
	return &OutputWriter[T]{ch: ch}
}

// Write blocks until the next stage takes the value. Values are dropped when there is no next stage.
func (w *OutputWriter[T]) Write(ctx context.Context, value *T) error {
	if w.ch == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case w.ch <- value:
		w.written++
		return nil
	}
}

func (w *OutputWriter[T]) Written() int {
	return w.written
}
