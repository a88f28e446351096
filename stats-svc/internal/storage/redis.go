package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"overcooked-ordering/domain"
)

const (
	dailyTTL = 400 * 24 * time.Hour
	seenTTL  = 7 * 24 * time.Hour
)

// Totals are the all-time counters of one restaurant. Revenue is gross:
// cancelled orders stay in it and are counted separately.
type Totals struct {
	Orders    int64           `json:"orders"`
	Revenue   decimal.Decimal `json:"revenue"`
	Completed int64           `json:"completed"`
	Cancelled int64           `json:"cancelled"`
}

type DayStats struct {
	Date    string          `json:"date"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type DishStat struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type StatsStore struct {
	Client *redis.Client
}

func NewStatsStore(client *redis.Client) *StatsStore {
	return &StatsStore{Client: client}
}

func totalsKey(restaurantID string) string { return "stats:" + restaurantID }

func dailyKey(restaurantID, date string) string { return "stats:daily:" + restaurantID + ":" + date }

func dishesKey(restaurantID string) string { return "stats:dishes:" + restaurantID }

func dishNamesKey(restaurantID string) string { return "stats:dish-names:" + restaurantID }

func seenKey(event domain.OrderEvent) string {
	return "stats:seen:" + event.OrderID + ":" + event.Type + ":" + string(event.Status)
}

// cents keeps money in integer minor units so HINCRBY stays exact.
func cents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func fromCents(raw string) decimal.Decimal {
	n, _ := strconv.ParseInt(raw, 10, 64)
	return decimal.New(n, -2)
}

func parseCount(raw string) int64 {
	n, _ := strconv.ParseInt(raw, 10, 64)
	return n
}

// firstDelivery marks the event as applied. Kafka may redeliver, and a
// redelivered event must not count twice.
func (s *StatsStore) firstDelivery(ctx context.Context, event domain.OrderEvent) (bool, error) {
	return s.Client.SetNX(ctx, seenKey(event), 1, seenTTL).Result()
}

// RecordOrderCreated counts the order, its revenue and its dishes. It
// reports false when the event was already applied.
func (s *StatsStore) RecordOrderCreated(ctx context.Context, event domain.OrderEvent) (bool, error) {
	first, err := s.firstDelivery(ctx, event)
	if err != nil || !first {
		return false, err
	}

	day := dailyKey(event.RestaurantID, event.Timestamp.UTC().Format(time.DateOnly))
	amount := cents(event.TotalAmount)

	_, err = s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, totalsKey(event.RestaurantID), "orders", 1)
		pipe.HIncrBy(ctx, totalsKey(event.RestaurantID), "revenue_cents", amount)
		pipe.HIncrBy(ctx, day, "orders", 1)
		pipe.HIncrBy(ctx, day, "revenue_cents", amount)
		pipe.Expire(ctx, day, dailyTTL)
		for _, line := range event.Items {
			pipe.ZIncrBy(ctx, dishesKey(event.RestaurantID), float64(line.Quantity), line.ItemID)
			if line.Name != "" {
				pipe.HSet(ctx, dishNamesKey(event.RestaurantID), line.ItemID, line.Name)
			}
		}
		return nil
	})
	if err != nil {
		s.Client.Del(ctx, seenKey(event))
		return false, err
	}
	return true, nil
}

// RecordStatusChange counts completed and cancelled orders. Other statuses
// are ignored.
func (s *StatsStore) RecordStatusChange(ctx context.Context, event domain.OrderEvent) (bool, error) {
	var field string
	switch event.Status {
	case domain.StatusCompleted:
		field = "completed"
	case domain.StatusCancelled:
		field = "cancelled"
	default:
		return false, nil
	}

	first, err := s.firstDelivery(ctx, event)
	if err != nil || !first {
		return false, err
	}
	if err := s.Client.HIncrBy(ctx, totalsKey(event.RestaurantID), field, 1).Err(); err != nil {
		s.Client.Del(ctx, seenKey(event))
		return false, err
	}
	return true, nil
}

func (s *StatsStore) Totals(ctx context.Context, restaurantID string) (Totals, error) {
	fields, err := s.Client.HGetAll(ctx, totalsKey(restaurantID)).Result()
	if err != nil {
		return Totals{}, err
	}
	return Totals{
		Orders:    parseCount(fields["orders"]),
		Revenue:   fromCents(fields["revenue_cents"]),
		Completed: parseCount(fields["completed"]),
		Cancelled: parseCount(fields["cancelled"]),
	}, nil
}

// Daily returns one entry per date, in the order given. Days without orders
// come back as zeros.
func (s *StatsStore) Daily(ctx context.Context, restaurantID string, dates []string) ([]DayStats, error) {
	cmds := make([]*redis.MapStringStringCmd, len(dates))
	_, err := s.Client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, date := range dates {
			cmds[i] = pipe.HGetAll(ctx, dailyKey(restaurantID, date))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	series := make([]DayStats, len(dates))
	for i, cmd := range cmds {
		fields := cmd.Val()
		series[i] = DayStats{
			Date:    dates[i],
			Orders:  parseCount(fields["orders"]),
			Revenue: fromCents(fields["revenue_cents"]),
		}
	}
	return series, nil
}

func (s *StatsStore) TopDishes(ctx context.Context, restaurantID string, limit int) ([]DishStat, error) {
	if limit < 1 {
		return []DishStat{}, nil
	}
	ranked, err := s.Client.ZRevRangeWithScores(ctx, dishesKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return []DishStat{}, nil
	}

	ids := make([]string, len(ranked))
	for i, z := range ranked {
		ids[i], _ = z.Member.(string)
	}
	names, err := s.Client.HMGet(ctx, dishNamesKey(restaurantID), ids...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	top := make([]DishStat, len(ranked))
	for i, z := range ranked {
		top[i] = DishStat{ItemID: ids[i], Quantity: int64(z.Score)}
		if i < len(names) {
			if name, ok := names[i].(string); ok {
				top[i].Name = name
			}
		}
	}
	return top, nil
}
