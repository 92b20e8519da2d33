package emitter_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"txnotify/internal/emitter"
	"txnotify/internal/emitter/fake"
	"txnotify/internal/message"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var _ = Describe("Emitters", func() {
	var (
		ctx          context.Context
		notification emitter.Notification
		fakeErr      error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		notification = emitter.Notification{
			TxHash:     "0xabc",
			MethodName: "approve",
			EventCode:  message.TxConfirmed,
			Message:    "DAI has been successfully unlocked. Woohoo!",
			Network:    "MAIN",
			CreatedAt:  time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
		}
	})

	Describe("LogEmitter", func() {
		It("never fails", func() {
			e := emitter.NewLogEmitter(zap.NewNop().Sugar())
			Expect(e.Emit(ctx, notification)).To(Succeed())
		})
	})

	Describe("KafkaEmitter", func() {
		var (
			writer    *fake.MessageWriter
			publisher *emitter.KafkaEmitter
		)

		BeforeEach(func() {
			writer = new(fake.MessageWriter)
			publisher = emitter.NewKafkaEmitterWithWriter(zap.NewNop().Sugar(), writer)
		})

		It("does not hold back other notifications while a write is in flight", func() {
			release := make(chan struct{})
			writer.WriteMessagesStub = func(_ context.Context, msgs ...kafka.Message) error {
				if string(msgs[0].Key) == "0xslow" {
					<-release
				}
				return nil
			}

			slow := notification
			slow.TxHash = "0xslow"
			slowDone := make(chan error, 1)
			go func() {
				slowDone <- publisher.Emit(ctx, slow)
			}()
			Eventually(writer.WriteMessagesCallCount).Should(Equal(1))

			Expect(publisher.Emit(ctx, notification)).To(Succeed())
			Expect(writer.WriteMessagesCallCount()).To(Equal(2))
			Consistently(slowDone).ShouldNot(Receive())

			close(release)
			Eventually(slowDone).Should(Receive(BeNil()))
		})

		It("publishes the notification keyed by transaction hash", func() {
			Expect(publisher.Emit(ctx, notification)).To(Succeed())
			Expect(writer.WriteMessagesCallCount()).To(Equal(1))

			_, msgs := writer.WriteMessagesArgsForCall(0)
			Expect(msgs).To(HaveLen(1))
			Expect(string(msgs[0].Key)).To(Equal("0xabc"))

			var got emitter.Notification
			Expect(json.Unmarshal(msgs[0].Value, &got)).To(Succeed())
			Expect(got).To(Equal(notification))
		})

		It("wraps writer errors", func() {
			writer.WriteMessagesReturns(fakeErr)
			err := publisher.Emit(ctx, notification)
			Expect(err).To(MatchError(fakeErr))
			Expect(err.Error()).To(ContainSubstring("write message to kafka"))
		})

		It("refuses to emit once closed", func() {
			Expect(publisher.Close()).To(Succeed())
			Expect(writer.CloseCallCount()).To(Equal(1))

			Expect(publisher.Emit(ctx, notification)).To(MatchError(emitter.ErrEmitterClosed))
			Expect(publisher.Close()).To(Succeed())
			Expect(writer.CloseCallCount()).To(Equal(1))
		})
	})

	Describe("StoreEmitter", func() {
		var store *fake.Store

		BeforeEach(func() {
			store = new(fake.Store)
		})

		It("saves the notification as a record", func() {
			e := emitter.NewStoreEmitter(store)
			Expect(e.Emit(ctx, notification)).To(Succeed())

			Expect(store.SaveNotificationCallCount()).To(Equal(1))
			_, record := store.SaveNotificationArgsForCall(0)
			Expect(record.TransactionHash).To(Equal("0xabc"))
			Expect(record.MethodName).To(Equal("approve"))
			Expect(record.EventCode).To(Equal("txConfirmed"))
			Expect(record.Message).To(Equal(notification.Message))
			Expect(record.Network).To(Equal("MAIN"))
			Expect(record.CreatedAt).To(Equal(notification.CreatedAt))
		})

		It("returns store errors", func() {
			store.SaveNotificationReturns(fakeErr)
			e := emitter.NewStoreEmitter(store)
			Expect(e.Emit(ctx, notification)).To(MatchError(fakeErr))
		})
	})

	Describe("Multi", func() {
		It("emits to every member and joins their errors", func() {
			first, second, third := new(fake.Emitter), new(fake.Emitter), new(fake.Emitter)
			second.EmitReturns(fakeErr)

			err := emitter.Multi{first, second, third}.Emit(ctx, notification)
			Expect(err).To(MatchError(fakeErr))
			Expect(first.EmitCallCount()).To(Equal(1))
			Expect(second.EmitCallCount()).To(Equal(1))
			Expect(third.EmitCallCount()).To(Equal(1))

			_, got := third.EmitArgsForCall(0)
			Expect(got).To(Equal(notification))
		})

		It("succeeds when empty", func() {
			Expect(emitter.Multi{}.Emit(ctx, notification)).To(Succeed())
		})
	})
})
