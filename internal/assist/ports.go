package assist

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Library is the onboarding and transaction tracking SDK.
//
//counterfeiter:generate -o fake -fake-name Library . Library
type Library interface {
	Init(cfg Config) (Handle, error)
}

// Handle is what an initialised Library hands back.
//
//counterfeiter:generate -o fake -fake-name Handle . Handle
type Handle interface {
	Onboard(ctx context.Context) error
	Contract(address string) Contract
	Transaction(ctx context.Context, hash string) error
}

// Contract is a contract decorated so that transactions sent to it are tracked.
//
//counterfeiter:generate -o fake -fake-name Contract . Contract
type Contract interface {
	Track(ctx context.Context, hash string) error
}
