// Package ledger 持有收支记录集合，负责持久化与查询汇总。
//
// 集合是唯一数据源：启动时从键值存储整体恢复，每次新增或删除后整体写回。
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"tracker/models"
	"tracker/storage"
)

// DefaultKey 记录集合的存储键
const DefaultKey = "transactions"

// Store 收支记录存储与查询
type Store struct {
	mu     sync.RWMutex
	kv     storage.KV
	key    string
	logger *log.Logger
	ids    idGenerator
	items  []models.Transaction
}

// Option Store 配置项
type Option func(*Store)

// WithKey 指定存储键
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock 指定 ID 生成使用的时钟
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.ids.now = now
	}
}

// WithLogger 指定日志输出
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open 创建 Store 并从存储恢复记录
// 键不存在或数据损坏时从空集合开始；存储本身不可用时返回错误，避免后续写入覆盖已有数据
func Open(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:     kv,
		key:    DefaultKey,
		logger: log.Default(),
		ids:    idGenerator{now: time.Now},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", s.key, err)
	}

	var items []models.Transaction
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Printf("警告: 存储中的记录无法解析，按空数据处理: %v", err)
		return nil
	}

	for _, t := range items {
		s.ids.observe(t.ID)
	}
	s.items = items
	return nil
}

// persist 整体写回，调用方持有写锁
func (s *Store) persist(ctx context.Context, items []models.Transaction) error {
	if items == nil {
		items = []models.Transaction{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// Add 分配 ID 后追加并持久化，不做字段校验
func (s *Store) Add(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := s.ids.last
	t.ID = s.ids.next()

	items := append(slices.Clip(s.items), t)
	if err := s.persist(ctx, items); err != nil {
		s.ids.last = last
		return models.Transaction{}, err
	}
	s.items = items
	return t, nil
}

// Delete 删除指定 ID 的记录，ID 不存在时不做任何事
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(t models.Transaction) bool { return t.ID == id })
	if idx < 0 {
		return nil
	}

	items := slices.Delete(slices.Clone(s.items), idx, idx+1)
	if err := s.persist(ctx, items); err != nil {
		return err
	}
	s.items = items
	return nil
}

// All 按插入顺序返回全部记录的副本
func (s *Store) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Len 记录数
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Query 按条件过滤，日期倒序
func (s *Store) Query(f Filter) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return f.Apply(s.items)
}

// Summarize 全部记录的收支汇总
func (s *Store) Summarize() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summarize(s.items)
}

// GroupByMonth 全部记录的月度汇总
func (s *Store) GroupByMonth() []MonthTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return GroupByMonth(s.items)
}

// CategoryBreakdown 全部记录的类别支出汇总
func (s *Store) CategoryBreakdown() []CategoryTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CategoryBreakdown(s.items)
}
