package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"txnotify/internal/assist"
	"txnotify/internal/core"
	"txnotify/internal/ethereum"
	"txnotify/internal/http/handler"
	"txnotify/internal/http/handler/fake"
	"txnotify/internal/http/payload"
	"txnotify/internal/message"
	"txnotify/internal/tracker"
	tokenIssuer "txnotify/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	txHash   = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
	exchange = "0x77dB9C915809e7BE439D2AB21032B1b8B58F6891"
)

var _ = Describe("AssistHandler", func() {
	var (
		ah            *handler.AssistHandler
		fakeService   *fake.AssistService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.AssistService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		ah = handler.NewAssistHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	decode := func() handler.Response {
		var resp handler.Response
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/assist/authenticate", strings.NewReader(`{"username":"test","password":"pass"}`))
			fakeService.AuthenticateReturns("test-token", nil)
		})

		JustBeforeEach(func() {
			ah.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("returns a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal("test-token"))

				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "test", Password: "pass"}))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("returns 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(decode().Error).To(Equal(core.ErrIncorrectPassword.Error()))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("returns 500 without details", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(decode().Error).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleFormatMessage", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"contract":{"methodName":"approve","parameters":[%q]},"transaction":{"to":%q}}`, exchange, exchange)
			req = httptest.NewRequest("POST", "/assist/messages/txSent", strings.NewReader(body))
			req.SetPathValue("eventCode", "txSent")
			fakeService.FormatMessageReturns("Sending transaction to unlock DAI", nil)
		})

		JustBeforeEach(func() {
			ah.HandleFormatMessage(w, req)
		})

		It("returns the message", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode().Message).To(Equal("Sending transaction to unlock DAI"))

			Expect(fakeService.FormatMessageArgsForCall(0)).To(Equal(core.FormatRequest{
				EventCode: "txSent",
				Descriptor: message.Descriptor{
					Contract:    message.Contract{MethodName: "approve", Parameters: []string{exchange}},
					Transaction: message.Transaction{To: exchange},
				},
			}))
		})

		When("there is no message", func() {
			BeforeEach(func() {
				fakeService.FormatMessageReturns("", core.ErrNoMessage)
			})

			It("returns 204", func() {
				Expect(w.Code).To(Equal(http.StatusNoContent))
				Expect(w.Body.Len()).To(Equal(0))
			})
		})

		When("the event code is unknown", func() {
			BeforeEach(func() {
				fakeService.FormatMessageReturns("", core.ErrUnknownEvent)
			})

			It("returns 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the method name is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/assist/messages/txSent", strings.NewReader(`{"contract":{}}`))
				req.SetPathValue("eventCode", "txSent")
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.FormatMessageCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleTrack", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"transactionHash":%q,"contract":%q}`, txHash, exchange)
			req = httptest.NewRequest("POST", "/assist/track", strings.NewReader(body))
			req.Header.Set("AUTH_TOKEN", "token")
		})

		JustBeforeEach(func() {
			ah.HandleTrack(w, req)
		})

		It("accepts the transaction", func() {
			Expect(w.Code).To(Equal(http.StatusAccepted))

			_, token, trackReq := fakeService.TrackArgsForCall(0)
			Expect(token).To(Equal("token"))
			Expect(trackReq).To(Equal(core.TrackRequest{TransactionHash: txHash, Contract: exchange}))
		})

		When("the token header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("returns 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.TrackCallCount()).To(Equal(0))
			})
		})
	})

	DescribeTable("HandleTrack maps service errors to status codes",
		func(err error, code int) {
			body := fmt.Sprintf(`{"transactionHash":%q}`, txHash)
			req := httptest.NewRequest("POST", "/assist/track", strings.NewReader(body))
			req.Header.Set("AUTH_TOKEN", "token")
			fakeService.TrackReturns(err)

			ah.HandleTrack(w, req)
			Expect(w.Code).To(Equal(code))
		},
		Entry("invalid token", fmt.Errorf("validate jwt token: %w", tokenIssuer.ErrTokenNotValid), http.StatusUnauthorized),
		Entry("expired token", tokenIssuer.ErrTokenExpired, http.StatusUnauthorized),
		Entry("unknown transaction", ethereum.ErrTxNotFound, http.StatusNotFound),
		Entry("wrong contract", tracker.ErrContractMismatch, http.StatusUnprocessableEntity),
		Entry("not onboarded", assist.ErrNotInitialized, http.StatusServiceUnavailable),
		Entry("anything else", errors.New("boom"), http.StatusInternalServerError),
	)

	Describe("HandleGetNotifications", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/assist/notifications?transactionHash="+txHash, nil)
			fakeService.GetNotificationsReturns([]core.NotificationRecord{
				{TransactionHash: txHash, EventCode: "txSent", Message: "Sending ETH to DAI swap request..."},
			}, nil)
		})

		JustBeforeEach(func() {
			ah.HandleGetNotifications(w, req)
		})

		It("lists the notifications", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string][]core.NotificationRecord
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["notifications"]).To(HaveLen(1))

			_, hash := fakeService.GetNotificationsArgsForCall(0)
			Expect(hash).To(Equal(txHash))
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/assist/notifications?transactionHash=0x1", nil)
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetNotificationsCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.GetNotificationsReturns(nil, fakeErr)
			})

			It("returns 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleInspectTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/assist/transactions?transactionHashes="+txHash, nil)
			fakeService.InspectReturns([]core.TransactionReport{{
				Transaction: &ethereum.Transaction{TransactionHash: txHash, Status: ethereum.StatusConfirmed},
				EventCode:   message.TxConfirmed,
				Message:     "Your swap from ETH to DAI is complete! Woohoo!",
			}}, nil)
		})

		JustBeforeEach(func() {
			ah.HandleInspectTransactions(w, req)
		})

		It("returns the reports", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"eventCode":"txConfirmed"`))
			Expect(w.Body.String()).To(ContainSubstring(`"status":"confirmed"`))

			_, hashes := fakeService.InspectArgsForCall(0)
			Expect(hashes).To(Equal([]string{txHash}))
		})

		When("no hashes are given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/assist/transactions", nil)
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the node lookup fails", func() {
			BeforeEach(func() {
				fakeService.InspectReturns(nil, fakeErr)
			})

			It("returns 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Describe("Register", func() {
		It("routes requests by method and path", func() {
			mux := http.NewServeMux()
			ah.Register(mux)

			fakeService.FormatMessageReturns("", core.ErrNoMessage)
			body := `{"contract":{"methodName":"transfer"}}`
			mux.ServeHTTP(w, httptest.NewRequest("POST", "/assist/messages/txPending", strings.NewReader(body)))

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(fakeService.FormatMessageArgsForCall(0).EventCode).To(Equal("txPending"))
		})
	})
})
