package ledger

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"tracker/models"
	"tracker/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV 读写都可注入错误
type failingKV struct {
	*storage.MemoryKV
	getErr error
	putErr error
}

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.MemoryKV.Get(ctx, key)
}

func (f *failingKV) Put(ctx context.Context, key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.MemoryKV.Put(ctx, key, value)
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func sample() []models.Transaction {
	return []models.Transaction{
		{Type: models.TypeIncome, Title: "Salary", Amount: 5000, Category: "Salary", Date: "2024-01-10", PaymentMode: "Card"},
		{Type: models.TypeExpense, Title: "Groceries", Amount: 1200, Category: "Food", Date: "2024-01-15", PaymentMode: "Cash"},
		{Type: models.TypeExpense, Title: "Dinner out", Amount: 300, Category: "Food", Date: "2024-02-01", PaymentMode: "UPI"},
	}
}

func openWith(t *testing.T, kv storage.KV, records []models.Transaction) *Store {
	t.Helper()
	s, err := Open(context.Background(), kv, WithClock(fixedClock(1_700_000_000_000)))
	require.NoError(t, err)
	for _, r := range records {
		_, err := s.Add(context.Background(), r)
		require.NoError(t, err)
	}
	return s
}

func TestStore_AddThenQueryAll(t *testing.T) {
	s := openWith(t, storage.NewMemoryKV(), nil)
	in := sample()[1]

	stored, err := s.Add(context.Background(), in)
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)

	got := s.Query(Filter{Category: All, Year: All, Month: All})
	require.Len(t, got, 1)

	want := in
	want.ID = stored.ID
	assert.Equal(t, want, got[0])
}

func TestStore_UniqueIDsUnderFrozenClock(t *testing.T) {
	s := openWith(t, storage.NewMemoryKV(), nil)

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		stored, err := s.Add(context.Background(), sample()[0])
		require.NoError(t, err)
		assert.False(t, seen[stored.ID], "duplicate id %d", stored.ID)
		seen[stored.ID] = true
	}
}

func TestStore_IDsContinueAfterRestore(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := openWith(t, kv, sample())
	maxID := s.All()[2].ID

	// 时钟回拨也不会和已有 ID 冲突
	restored, err := Open(context.Background(), kv, WithClock(fixedClock(1)))
	require.NoError(t, err)
	stored, err := restored.Add(context.Background(), sample()[0])
	require.NoError(t, err)
	assert.Greater(t, stored.ID, maxID)
}

func TestStore_Delete(t *testing.T) {
	s := openWith(t, storage.NewMemoryKV(), sample())
	all := s.All()

	require.NoError(t, s.Delete(context.Background(), all[1].ID))

	assert.Equal(t, []models.Transaction{all[0], all[2]}, s.All())
}

func TestStore_DeleteUnknownIsNoop(t *testing.T) {
	s := openWith(t, storage.NewMemoryKV(), sample())
	before := s.All()

	require.NoError(t, s.Delete(context.Background(), 42))
	assert.Equal(t, before, s.All())
}

func TestStore_PersistRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := openWith(t, kv, sample())
	require.NoError(t, s.Delete(context.Background(), s.All()[0].ID))

	restored, err := Open(context.Background(), kv)
	require.NoError(t, err)
	assert.Equal(t, s.All(), restored.All())

	raw, err := kv.Get(context.Background(), DefaultKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"amount":1200`)
	assert.Contains(t, string(raw), `"paymentMode":"Cash"`)
}

func TestStore_EmptyCollectionPersistsAsArray(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := openWith(t, kv, sample()[:1])
	require.NoError(t, s.Delete(context.Background(), s.All()[0].ID))

	raw, err := kv.Get(context.Background(), DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestOpen_MissingOrMalformedData(t *testing.T) {
	// 键不存在
	s, err := Open(context.Background(), storage.NewMemoryKV())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	// 数据损坏
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Put(context.Background(), DefaultKey, []byte("{not json")))
	var buf bytes.Buffer
	s, err = Open(context.Background(), kv, WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Contains(t, buf.String(), "无法解析")
}

func TestOpen_StorageUnavailable(t *testing.T) {
	kv := &failingKV{MemoryKV: storage.NewMemoryKV(), getErr: errors.New("connection refused")}
	_, err := Open(context.Background(), kv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestOpen_RestoresExternalData(t *testing.T) {
	kv := storage.NewMemoryKV()
	raw := `[{"id":1704880000000,"type":"income","title":"Salary","amount":5000,"category":"Salary","date":"2024-01-10","paymentMode":"Card"},` +
		`{"id":1704880000001,"type":"expense","title":"Tea","amount":12.5,"category":"Food","date":"2024-01-11","paymentMode":"Cash"}]`
	require.NoError(t, kv.Put(context.Background(), DefaultKey, []byte(raw)))

	s, err := Open(context.Background(), kv, WithKey(DefaultKey))
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 12.5, s.All()[1].Amount)
	assert.Equal(t, int64(1704880000001), s.All()[1].ID)
}

func TestStore_WriteFailureLeavesStateUnchanged(t *testing.T) {
	kv := &failingKV{MemoryKV: storage.NewMemoryKV()}
	s := openWith(t, kv, sample()[:2])
	before := s.All()

	kv.putErr = errors.New("disk full")

	_, err := s.Add(context.Background(), sample()[2])
	assert.Error(t, err)
	assert.Equal(t, before, s.All())

	err = s.Delete(context.Background(), before[0].ID)
	assert.Error(t, err)
	assert.Equal(t, before, s.All())

	// 恢复后 ID 依然唯一
	kv.putErr = nil
	stored, err := s.Add(context.Background(), sample()[2])
	require.NoError(t, err)
	assert.Greater(t, stored.ID, before[1].ID)
}

func TestStore_WithKey(t *testing.T) {
	kv := storage.NewMemoryKV()
	s, err := Open(context.Background(), kv, WithKey("ledger-2024"))
	require.NoError(t, err)
	_, err = s.Add(context.Background(), sample()[0])
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), "ledger-2024")
	assert.NoError(t, err)
	_, err = kv.Get(context.Background(), DefaultKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_WorkedExample(t *testing.T) {
	s := openWith(t, storage.NewMemoryKV(), sample())
	all := s.All()

	assert.Equal(t, Summary{TotalIncome: 5000, TotalExpense: 1500, Balance: 3500}, s.Summarize())

	got := s.Query(Filter{Category: All, Year: "2024", Month: "01"})
	assert.Equal(t, []models.Transaction{all[1], all[0]}, got)

	assert.Equal(t, []MonthTotal{
		{Month: "2024-01", Label: "Jan 2024", Income: 5000, Expense: 1200},
		{Month: "2024-02", Label: "Feb 2024", Income: 0, Expense: 300},
	}, s.GroupByMonth())

	assert.Equal(t, []CategoryTotal{{Category: "Food", Amount: 1500}}, s.CategoryBreakdown())
}
