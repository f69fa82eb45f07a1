package redis

import (
	"context"
	"time"
)

const unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

// Locker 兼容多进程部署的分布式租约。任务互斥依赖它，
// 而不是单进程内的串行执行
type Locker struct{}

func NewLocker() *Locker {
	return &Locker{}
}

// Acquire SetNX 抢租约，抢不到立即返回 false 而不是排队等待
func (l *Locker) Acquire(ctx context.Context, key string, token string, ttl time.Duration) (bool, error) {
	return Rdb.SetNX(ctx, key, token, ttl).Result()
}

// Release 只释放自己持有的租约，避免误删他人的锁
func (l *Locker) Release(ctx context.Context, key string, token string) error {
	return Rdb.Eval(ctx, unlockScript, []string{key}, token).Err()
}
