package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

const seenKeyTTLSeconds = 86400

// ValkeyClient tracks comments that already went through a run, so an
// incremental re-run can skip re-annotating them. The pipeline works without
// it; a nil client disables the cache entirely.
type ValkeyClient struct {
	Client valkey.Client
}

func NewValkeyClient(address, password string, useTLS bool) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{address},
		Password:         password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping: %w", res.Error())
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	return &ValkeyClient{Client: client}, nil
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

func seenKey(platform string) string {
	return "comments:seen:" + platform
}

// MarkSeen records a comment as processed for its platform; the set expires
// after a day so stale runs do not pin memory.
func (vc *ValkeyClient) MarkSeen(ctx context.Context, platform, commentID string) error {
	key := seenKey(platform)
	completed := []valkey.Completed{
		vc.Client.B().Sadd().Key(key).Member(commentID).Build(),
		vc.Client.B().Expire().Key(key).Seconds(seenKeyTTLSeconds).Build(),
	}

	for _, res := range vc.Client.DoMulti(ctx, completed...) {
		if err := res.Error(); err != nil {
			return err
		}
	}
	return nil
}

// IsSeen reports whether a comment was processed by an earlier run. Errors
// read as "not seen" so a cache outage never blocks the pipeline.
func (vc *ValkeyClient) IsSeen(ctx context.Context, platform, commentID string) bool {
	res := vc.Client.Do(ctx, vc.Client.B().Sismember().Key(seenKey(platform)).Member(commentID).Build())
	if err := res.Error(); err != nil {
		slog.Warn("[ValkeyClient] Sismember failed",
			slog.String("error", err.Error()))
		return false
	}

	seen, err := res.AsBool()
	if err != nil {
		return false
	}
	return seen
}
