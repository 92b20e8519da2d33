package core_test

import (
	"context"
	"errors"
	"time"

	"txnotify/internal/addresses"
	assistfake "txnotify/internal/assist/fake"
	"txnotify/internal/core"
	"txnotify/internal/core/fake"
	"txnotify/internal/ethereum"
	ethfake "txnotify/internal/ethereum/fake"
	"txnotify/internal/message"
	"txnotify/internal/repository"
	tokenIssuer "txnotify/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Service", func() {
	var (
		fakeRepo      *fake.Repository
		fakeJWT       *fake.JWTIssuer
		fakeEth       *fake.EthereumService
		fakeAssistant *fake.Assistant
		fakeProvider  *ethfake.EthClient
		table         *addresses.Table
		ctx           context.Context

		service *core.Service

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeEth = new(fake.EthereumService)
		fakeAssistant = new(fake.Assistant)
		fakeProvider = new(ethfake.EthClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		table = &addresses.Table{
			ExchangeAddresses: addresses.PairList{Addresses: []addresses.Pair{
				{Ticker: "DAI", Address: "0xEXCHANGE"},
			}},
			TokenAddresses: addresses.PairList{Addresses: []addresses.Pair{
				{Ticker: "DAI", Address: "0xTOKEN"},
			}},
		}

		service = core.NewService(zap.NewNop().Sugar(), fakeRepo, fakeJWT, fakeEth, fakeAssistant, fakeProvider, table)
	})

	Describe("Authenticate", func() {
		var (
			authMsg  core.AuthMessage
			token    string
			err      error
			userID   string
			genToken *jwt.Token
		)

		BeforeEach(func() {
			userID = uuid.NewString()
			genToken = jwt.New(jwt.SigningMethodHS512)
			authMsg = core.AuthMessage{Username: "testuser", Password: "testpass"}

			hash, hashErr := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())

			fakeRepo.GetUserFromDBReturns(repository.User{
				ID:           userID,
				Username:     authMsg.Username,
				PasswordHash: string(hash),
			}, nil)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			token, err = service.Authenticate(ctx, authMsg)
		})

		When("the password matches", func() {
			It("returns a signed token for the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				_, username := fakeRepo.GetUserFromDBArgsForCall(0)
				Expect(username).To(Equal("testuser"))

				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					Username: "testuser",
					Subject:  userID,
					TTL:      24 * time.Hour,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				authMsg.Password = "wrongpass"
			})

			It("returns ErrIncorrectPassword", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
			})
		})
	})

	Describe("FormatMessage", func() {
		var req core.FormatRequest

		BeforeEach(func() {
			req = core.FormatRequest{
				EventCode: "txConfirmed",
				Descriptor: message.Descriptor{
					Contract: message.Contract{MethodName: "approve", Parameters: []string{"0xEXCHANGE"}},
				},
			}
		})

		It("formats the message for the event", func() {
			text, err := service.FormatMessage(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("DAI has been successfully unlocked. Woohoo!"))
		})

		It("rejects unknown event codes", func() {
			req.EventCode = "txSpeedUp"
			_, err := service.FormatMessage(req)
			Expect(err).To(MatchError(core.ErrUnknownEvent))
		})

		It("reports methods without messages", func() {
			req.Descriptor.Contract.MethodName = "transfer"
			_, err := service.FormatMessage(req)
			Expect(err).To(MatchError(core.ErrNoMessage))
		})
	})

	Describe("Onboard", func() {
		It("onboards with the node provider", func() {
			Expect(service.Onboard(ctx)).To(Succeed())
			Expect(fakeAssistant.OnboardUserCallCount()).To(Equal(1))
			_, provider := fakeAssistant.OnboardUserArgsForCall(0)
			Expect(provider).To(BeIdenticalTo(fakeProvider))
		})

		It("returns onboarding errors", func() {
			fakeAssistant.OnboardUserReturns(fakeErr)
			Expect(service.Onboard(ctx)).To(MatchError(fakeErr))
		})
	})

	Describe("Track", func() {
		var (
			req          core.TrackRequest
			err          error
			fakeContract *assistfake.Contract
		)

		BeforeEach(func() {
			req = core.TrackRequest{TransactionHash: "0xabc"}
			fakeContract = new(assistfake.Contract)
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
			fakeAssistant.DecorateContractReturns(fakeContract, nil)
		})

		JustBeforeEach(func() {
			err = service.Track(ctx, "token", req)
		})

		When("no contract is given", func() {
			It("decorates the transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("token"))
				Expect(fakeAssistant.DecorateTransactionCallCount()).To(Equal(1))
				_, hash := fakeAssistant.DecorateTransactionArgsForCall(0)
				Expect(hash).To(Equal("0xabc"))
				Expect(fakeAssistant.DecorateContractCallCount()).To(Equal(0))
			})
		})

		When("a contract is given", func() {
			BeforeEach(func() {
				req.Contract = "0xEXCHANGE"
			})

			It("tracks through the decorated contract", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeAssistant.DecorateContractArgsForCall(0)).To(Equal("0xEXCHANGE"))
				Expect(fakeContract.TrackCallCount()).To(Equal(1))
				_, hash := fakeContract.TrackArgsForCall(0)
				Expect(hash).To(Equal("0xabc"))
				Expect(fakeAssistant.DecorateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the contract rejects the transaction", func() {
			BeforeEach(func() {
				req.Contract = "0xEXCHANGE"
				fakeContract.TrackReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("does not track", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
				Expect(fakeAssistant.DecorateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the token has no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("does not track", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrMissingSubject))
			})
		})
	})

	Describe("GetNotifications", func() {
		It("maps stored notifications", func() {
			created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
			fakeRepo.GetNotificationsReturns([]repository.Notification{
				{ID: 1, TransactionHash: "0xabc", MethodName: "approve", EventCode: "txSent", Message: "m", Network: "MAIN", CreatedAt: created},
			}, nil)

			records, err := service.GetNotifications(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(Equal([]core.NotificationRecord{
				{TransactionHash: "0xabc", MethodName: "approve", EventCode: "txSent", Message: "m", Network: "MAIN", CreatedAt: created},
			}))

			_, hash := fakeRepo.GetNotificationsArgsForCall(0)
			Expect(hash).To(Equal("0xabc"))
		})

		It("returns repository errors", func() {
			fakeRepo.GetNotificationsReturns(nil, fakeErr)
			_, err := service.GetNotifications(ctx, "0xabc")
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("Inspect", func() {
		var (
			confirmed *ethereum.Transaction
			pending   *ethereum.Transaction
		)

		BeforeEach(func() {
			confirmed = &ethereum.Transaction{
				TransactionHash: "0xaa",
				Status:          ethereum.StatusConfirmed,
				Descriptor: message.Descriptor{
					Contract:    message.Contract{MethodName: "addLiquidity"},
					Transaction: message.Transaction{To: "0xEXCHANGE"},
				},
			}
			pending = &ethereum.Transaction{
				TransactionHash: "0xbb",
				Status:          ethereum.StatusPending,
				Descriptor: message.Descriptor{
					Contract: message.Contract{MethodName: "transfer"},
				},
			}
		})

		It("reports each transaction with its status message in request order", func() {
			fakeEth.FetchTransactionsReturns([]*ethereum.Transaction{pending, confirmed}, nil)

			reports, err := service.Inspect(ctx, []string{"0xAA", "0xbb"})
			Expect(err).NotTo(HaveOccurred())
			Expect(reports).To(HaveLen(2))

			Expect(reports[0].Transaction).To(Equal(confirmed))
			Expect(reports[0].EventCode).To(Equal(message.TxConfirmed))
			Expect(reports[0].Message).To(Equal("DAI liquidity successfully added. Woohoo!"))

			Expect(reports[1].EventCode).To(Equal(message.TxPending))
			Expect(reports[1].Message).To(BeEmpty())
		})

		It("returns what it found when some lookups fail", func() {
			fakeEth.FetchTransactionsReturns([]*ethereum.Transaction{confirmed}, fakeErr)

			reports, err := service.Inspect(ctx, []string{"0xaa", "0xcc"})
			Expect(err).NotTo(HaveOccurred())
			Expect(reports).To(HaveLen(1))
		})

		It("fails when nothing could be fetched", func() {
			fakeEth.FetchTransactionsReturns(nil, fakeErr)

			_, err := service.Inspect(ctx, []string{"0xcc"})
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
