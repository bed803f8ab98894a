package handlers

import (
	"encoding/json"
	"fmt"

	"randroom/pkg/api"
)

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (WAIT, EXIT)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя Unmarshal и Validate.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		// 1. Распаковка JSON
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// 2. Автоматическая валидация
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных (WAIT, EXIT)
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}

// WithInventoryChoice - команда над слотом инвентаря.
// Без payload слот выбирается через меню инвентаря.
func WithInventoryChoice(header string, handler TypedHandlerFunc[api.InventoryPayload]) HandlerFunc {
	typed := WithPayload(handler)
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if len(raw) > 0 {
			return typed(ctx, raw)
		}

		inv := ctx.Game.Inventory
		options := make([]string, 0, len(inv))
		for _, item := range inv {
			options = append(options, InventoryLabel(item))
		}
		if len(options) == 0 {
			options = append(options, "Inventory is empty.")
		}

		choice, ok := ctx.UI.Menu(header, options)
		if !ok || choice < 0 || choice >= len(inv) {
			return EmptyResult(), nil
		}
		return handler(ctx, api.InventoryPayload{Index: choice})
	}
}
