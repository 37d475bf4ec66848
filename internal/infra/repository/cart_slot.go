package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// カートを保存する固定key
const CartStorageKey = "cart-storage"

// 保存形式のversion（形式を変えたら上げる）
const cartStorageVersion = 0

var (
	// スロットの中身が読めない
	ErrCorruptCartSlot = errors.New("corrupt cart slot")
	// 別versionの保存形式
	ErrCartSlotVersion = errors.New("unsupported cart slot version")
)

// {"state":{"cart":[...]},"version":0}
type cartEnvelope struct {
	State   model.CartState `json:"state"`
	Version int             `json:"version"`
}

// スロット上のカート
// slots が nil なら読み込みは空、保存は何もしない。
type CartSlotRepository struct {
	slots repo.SlotRepository
}

var _ repo.CartRepository = (*CartSlotRepository)(nil)

// DI
func NewCartSlotRepository(slots repo.SlotRepository) *CartSlotRepository {
	return &CartSlotRepository{slots: slots}
}

// Load は常に使えるstateを返す（errはログ用）
func (r *CartSlotRepository) Load(ctx context.Context) (model.CartState, error) {
	if r.slots == nil {
		return model.CartState{}, nil
	}

	raw, err := r.slots.Get(ctx, CartStorageKey)
	if errors.Is(err, repo.ErrSlotNotFound) {
		return model.CartState{}, nil
	}
	if err != nil {
		return model.CartState{}, err
	}

	var env cartEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return model.CartState{}, fmt.Errorf("%w: %v", ErrCorruptCartSlot, err)
	}
	if env.Version != cartStorageVersion {
		return model.CartState{}, fmt.Errorf("%w: %d", ErrCartSlotVersion, env.Version)
	}
	if env.State.Entries == nil {
		env.State.Entries = []model.CartEntry{}
	}
	return env.State, nil
}

// Save はカート全体を書き込む
func (r *CartSlotRepository) Save(ctx context.Context, state model.CartState) error {
	if r.slots == nil {
		return nil
	}
	if state.Entries == nil {
		state.Entries = []model.CartEntry{}
	}

	b, err := json.Marshal(cartEnvelope{State: state, Version: cartStorageVersion})
	if err != nil {
		return err
	}
	return r.slots.Set(ctx, CartStorageKey, string(b))
}
