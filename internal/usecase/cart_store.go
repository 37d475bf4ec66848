package usecase

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"go.uber.org/zap"
)

// 呼び出し元の ctx が切れても保存は最後まで行う
const persistTimeout = 5 * time.Second

// CartStore はアプリで1つのカート
// 変更は全部ここを通し、変更のたびに保存する。
type CartStore struct {
	mu     sync.Mutex
	state  model.CartState
	repo   repo.CartRepository
	logger *zap.Logger

	// 通知を変更の順番どおりに流す
	notifyMu sync.Mutex

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(model.CartState)
}

// DI
// 保存済みのカートを読み込む（読めなければ空）。
func NewCartStore(ctx context.Context, cartRepo repo.CartRepository, logger *zap.Logger) *CartStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CartStore{
		repo:   cartRepo,
		logger: logger,
		subs:   map[int]func(model.CartState){},
	}

	state, err := cartRepo.Load(ctx)
	if err != nil {
		logger.Warn("cart rehydrate failed, starting empty", zap.Error(err))
		state = model.CartState{}
	}
	s.state = normalize(state)
	return s
}

// 空のidや負の価格の行を捨て、同じidは1行にまとめる
func normalize(state model.CartState) model.CartState {
	out := model.CartState{Entries: make([]model.CartEntry, 0, len(state.Entries))}
	index := map[string]int{}
	for _, e := range state.Entries {
		if e.ID == "" || e.Quantity < 1 || e.Price.IsNegative() {
			continue
		}
		if i, ok := index[e.ID]; ok {
			out.Entries[i].Quantity += e.Quantity
			continue
		}
		index[e.ID] = len(out.Entries)
		out.Entries = append(out.Entries, e)
	}
	return out
}

// Snapshot は現在のカートのコピー
func (s *CartStore) Snapshot() model.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Add は同じidなら数量を足す（quantity<=0 は1扱い）
// 既存の明細の表示情報と価格は上書きしない。
// 負の価格の明細は追加せず、今のカートを返す。
func (s *CartStore) Add(ctx context.Context, entry model.CartEntry) model.CartState {
	if entry.Price.IsNegative() {
		s.logger.Warn("cart add ignored: negative price",
			zap.String("id", entry.ID),
			zap.String("price", entry.Price.String()),
		)
		return s.Snapshot()
	}

	q := entry.Quantity
	if q < 1 {
		q = 1
	}

	return s.mutate(ctx, func(st *model.CartState) {
		for i := range st.Entries {
			if st.Entries[i].ID == entry.ID {
				st.Entries[i].Quantity += q
				return
			}
		}
		entry.Quantity = q
		st.Entries = append(st.Entries, entry)
	})
}

// Remove は無いidなら何もしない
func (s *CartStore) Remove(ctx context.Context, id string) model.CartState {
	return s.mutate(ctx, func(st *model.CartState) {
		kept := st.Entries[:0]
		for _, e := range st.Entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		st.Entries = kept
	})
}

// UpdateQuantity は数量を置き換える
func (s *CartStore) UpdateQuantity(ctx context.Context, id string, quantity int) (model.CartState, error) {
	if quantity < 1 {
		return s.Snapshot(), ErrInvalidQuantity
	}
	return s.mutate(ctx, func(st *model.CartState) {
		for i := range st.Entries {
			if st.Entries[i].ID == id {
				st.Entries[i].Quantity = quantity
				return
			}
		}
	}), nil
}

// Clear はカートを空にする
func (s *CartStore) Clear(ctx context.Context) model.CartState {
	return s.mutate(ctx, func(st *model.CartState) {
		st.Entries = []model.CartEntry{}
	})
}

// Subscribe は変更後のカートを受け取る関数を登録する
// 通知は変更の順番どおりに届く。fn の中から同期的にカートを変更しないこと。
func (s *CartStore) Subscribe(fn func(model.CartState)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *CartStore) mutate(ctx context.Context, fn func(st *model.CartState)) model.CartState {
	s.mu.Lock()
	next := s.state.Clone()
	fn(&next)
	s.state = next

	//保存は失敗してもメモリ上の状態を正とする
	s.persist(ctx, next.Clone())
	snap := next.Clone()

	// 状態のロックを離す前に通知の順番を取る
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.notify(snap)
	return snap
}

func (s *CartStore) persist(ctx context.Context, state model.CartState) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := s.repo.Save(ctx, state); err != nil {
		s.logger.Warn("cart persist failed", zap.Error(err))
	}
}

func (s *CartStore) notify(snap model.CartState) {
	s.subMu.Lock()
	fns := make([]func(model.CartState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap.Clone())
	}
}
