package bulk

import (
	"context"
	"errors"
	"fmt"
)

// ErrPartialBatchFailure возвращается Result.Err, если хотя бы один элемент не обработан
var ErrPartialBatchFailure = errors.New("bulk: partial batch failure")

// PartialBatchFailure агрегированный результат пакета с ошибками
// Детали по отдельным элементам не сохраняются
type PartialBatchFailure struct {
	SuccessCount int
	FailureCount int
}

func (e *PartialBatchFailure) Error() string {
	return fmt.Sprintf("bulk: %d of %d items failed", e.FailureCount, e.SuccessCount+e.FailureCount)
}

func (e *PartialBatchFailure) Unwrap() error {
	return ErrPartialBatchFailure
}

// Result итог пакетной операции
type Result struct {
	Attempted    int
	SuccessCount int
	FailureCount int
}

// Err возвращает *PartialBatchFailure, если были ошибки, иначе nil
func (r Result) Err() error {
	if r.FailureCount == 0 {
		return nil
	}
	return &PartialBatchFailure{SuccessCount: r.SuccessCount, FailureCount: r.FailureCount}
}

// Operation обработка одного элемента пакета
type Operation[T any] func(ctx context.Context, item T) error

// Run последовательно выполняет op для каждого элемента, по одному за раз
//
// Ошибка или паника в op засчитывается как неудача элемента и дальше не пробрасывается.
// Цикл всегда доходит до конца списка: отмена контекста не прерывает пакет,
// контекст только передаётся в op. Откатов и повторов нет.
func Run[T any](ctx context.Context, items []T, op Operation[T]) Result {
	var res Result

	for _, item := range items {
		res.Attempted++
		if err := safeCall(ctx, item, op); err != nil {
			res.FailureCount++
			continue
		}
		res.SuccessCount++
	}

	return res
}

func safeCall[T any](ctx context.Context, item T, op Operation[T]) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("bulk: operation panicked: %v", p)
		}
	}()
	return op(ctx, item)
}
