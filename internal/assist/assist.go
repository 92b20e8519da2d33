package assist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"txnotify/internal/ethereum"
	"txnotify/internal/message"

	"go.uber.org/zap"
)

var ErrNotInitialized error = errors.New("assist is not initialized")

// Client initialises the tracking library once and hands out the cached
// handle afterwards. It is built by the composition root and shared.
type Client struct {
	logs     *zap.SugaredLogger
	library  Library
	settings Settings

	mu     sync.Mutex
	handle Handle
}

func NewClient(logger *zap.SugaredLogger, library Library, settings Settings) *Client {
	if settings.DappID == "" {
		settings.DappID = DefaultDappID
	}
	return &Client{
		logs:     logger,
		library:  library,
		settings: settings,
	}
}

// Get returns the cached handle, initialising the library with provider on
// the first call. Later calls ignore provider, even when it differs from the
// one the handle was built with. A failed init caches nothing.
func (c *Client) Get(provider ethereum.EthClient) (Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle != nil {
		return c.handle, nil
	}

	cfg := Config{
		NetworkID: c.settings.NetworkID,
		DappID:    c.settings.DappID,
		Provider:  provider,
		Messages:  NewMessages(message.NewFormatter(c.settings.Table)),
	}

	handle, err := c.library.Init(cfg)
	if err != nil {
		return nil, fmt.Errorf("init assist: %w", err)
	}

	c.handle = handle
	c.logs.Infow("assist initialized",
		"network_id", cfg.NetworkID,
		"dapp_id", cfg.DappID)

	return handle, nil
}

func (c *Client) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle != nil
}

// OnboardUser initialises with provider when needed and runs onboarding.
func (c *Client) OnboardUser(ctx context.Context, provider ethereum.EthClient) error {
	handle, err := c.Get(provider)
	if err != nil {
		return err
	}
	if err := handle.Onboard(ctx); err != nil {
		return fmt.Errorf("onboard: %w", err)
	}
	return nil
}

func (c *Client) DecorateContract(address string) (Contract, error) {
	handle, err := c.cached()
	if err != nil {
		return nil, err
	}
	return handle.Contract(address), nil
}

func (c *Client) DecorateTransaction(ctx context.Context, hash string) error {
	handle, err := c.cached()
	if err != nil {
		return err
	}
	if err := handle.Transaction(ctx, hash); err != nil {
		return fmt.Errorf("track transaction %q: %w", hash, err)
	}
	return nil
}

func (c *Client) cached() (Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == nil {
		return nil, ErrNotInitialized
	}
	return c.handle, nil
}
