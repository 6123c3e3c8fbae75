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

package stages

import (
	"context"
	"fmt"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/logging"
)

// Cleanup carries a request whose handling ended, Error is nil when it succeeded.
type Cleanup[T any] struct {
	Request *T
	Error   error
}

// Stage runs a handler over every request of its input channel. Failed requests go to the cleanup channel.
type Stage[T, V any] struct {
	handler entities.Handler[T, V]
	input   <-chan *T
	output  chan *V
	cleanup chan<- *Cleanup[T]
	logger  logging.Logger
}

func NewStage[T any, V any](handler entities.Handler[T, V], inputChannel chan *T, cleanupChannel chan *Cleanup[T], logger logging.Logger) Stage[T, V] {
	return Stage[T, V]{
		handler: handler,
		input:   inputChannel,
		output:  make(chan *V),
		cleanup: cleanupChannel,
		logger:  logger,
	}
}

func (s *Stage[T, V]) Output() chan *V {
	return s.output
}

func (s *Stage[T, V]) Process(ctx context.Context) {
	name := s.handler.Name()
	s.logger.Infow("Start of stage", "handler", name)

	go s.run(ctx, name)
}

func (s *Stage[T, V]) run(ctx context.Context, name string) {
	defer s.logger.Infow("End of stage", "handler", name)

	for {
		select {
		case <-ctx.Done():
			return
		case request, ok := <-s.input:
			if !ok {
				return
			}

			if err := s.handle(ctx, request); err != nil {
				s.logger.Errorw("Handler failed", "handler", name, "error", err)
				s.sendCleanup(ctx, &Cleanup[T]{Request: request, Error: err})
			}
		}
	}
}

// handle turns a handler panic into an error, one bad request must not stop the stage.
func (s *Stage[T, V]) handle(ctx context.Context, request *T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	return s.handler.Handle(ctx, request, entities.NewOutputWriter[V](s.output))
}

func (s *Stage[T, V]) sendCleanup(ctx context.Context, cleanup *Cleanup[T]) {
	if s.cleanup == nil {
		return
	}

	select {
	case <-ctx.Done():
	case s.cleanup <- cleanup:
	}
}
