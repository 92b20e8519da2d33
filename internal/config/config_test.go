package config_test

import (
	"os"
	"path/filepath"
	"time"

	"txnotify/internal/addresses"
	"txnotify/internal/assist"
	"txnotify/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var allKeys = []string{
	"API_PORT", "ETH_NODE_URL", "DB_CONNECTION_URL", "JWT_SECRET",
	"NETWORK_ID", "DAPP_ID", "ADDRESS_BOOK_PATH", "LOG_LEVEL",
	"KAFKA_BROKER_ADDRESS", "KAFKA_TOPIC", "TRACKER_POLL_INTERVAL", "TRACKER_TIMEOUT",
	"OPERATOR_USERNAME", "OPERATOR_PASSWORD",
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("Config", func() {
	BeforeEach(func() {
		for _, key := range allKeys {
			if old, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, old)
			} else {
				DeferCleanup(os.Unsetenv, key)
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}

		setEnv("API_PORT", "8080")
		setEnv("ETH_NODE_URL", "https://rinkeby.example")
		setEnv("DB_CONNECTION_URL", "postgres://localhost/txnotify")
		setEnv("JWT_SECRET", "secret")
	})

	Describe("NewApp", func() {
		It("reads required keys and applies defaults", func() {
			app, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())

			Expect(app.Port).To(Equal("8080"))
			Expect(app.NodeURL).To(Equal("https://rinkeby.example"))
			Expect(app.DBConnectionURL).To(Equal("postgres://localhost/txnotify"))
			Expect(app.JWTSecret).To(Equal("secret"))

			Expect(app.NetworkID).To(Equal("1"))
			Expect(app.Network()).To(Equal(addresses.Main))
			Expect(app.DappID).To(Equal(assist.DefaultDappID))
			Expect(app.LogLevel).To(Equal("info"))
			Expect(app.Kafka.Enabled()).To(BeFalse())
			Expect(app.Kafka.Topic).To(Equal("tx-notifications"))
			Expect(app.Tracker.PollInterval).To(Equal(5 * time.Second))
			Expect(app.Tracker.Timeout).To(Equal(3 * time.Minute))
			Expect(app.Operator.Username).To(Equal("operator"))
			Expect(app.Operator.Password).To(BeEmpty())
		})

		It("reads optional overrides", func() {
			setEnv("NETWORK_ID", "4")
			setEnv("KAFKA_BROKER_ADDRESS", "localhost:9092")
			setEnv("TRACKER_POLL_INTERVAL", "2s")
			setEnv("OPERATOR_PASSWORD", "pw")

			app, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Network()).To(Equal(addresses.Rinkeby))
			Expect(app.Kafka.Enabled()).To(BeTrue())
			Expect(app.Tracker.PollInterval).To(Equal(2 * time.Second))
			Expect(app.Operator.Password).To(Equal("pw"))
		})

		It("fails when a required key is missing", func() {
			Expect(os.Unsetenv("JWT_SECRET")).To(Succeed())
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("JWT_SECRET")))
		})

		DescribeTable("selects the main tables for any id other than 4",
			func(id string) {
				setEnv("NETWORK_ID", id)
				app, err := config.NewApp()
				Expect(err).NotTo(HaveOccurred())
				Expect(app.NetworkID).To(Equal(id))
				Expect(app.Network()).To(Equal(addresses.Main))
			},
			Entry("zero padded", "04"),
			Entry("signed", "+4"),
			Entry("not a number", "rinkeby"),
			Entry("another chain", "42"),
		)

		It("rejects a malformed duration", func() {
			setEnv("TRACKER_TIMEOUT", "soon")
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("TRACKER_TIMEOUT")))
		})
	})

	Describe("NewFormat", func() {
		It("does not need the server keys", func() {
			Expect(os.Unsetenv("API_PORT")).To(Succeed())
			format, err := config.NewFormat()
			Expect(err).NotTo(HaveOccurred())
			Expect(format.NetworkID).To(Equal("1"))
		})

		It("loads the embedded address book by default", func() {
			format, err := config.NewFormat()
			Expect(err).NotTo(HaveOccurred())
			book, err := format.AddressBook()
			Expect(err).NotTo(HaveOccurred())
			Expect(book.Table(addresses.Main)).NotTo(BeNil())
		})

		It("loads an address book from disk", func() {
			path := filepath.Join(GinkgoT().TempDir(), "book.json")
			Expect(os.WriteFile(path, []byte(`{"RINKEBY":{"exchangeAddresses":{"addresses":[["DAI","0x1"]]},"tokenAddresses":{"addresses":[]}}}`), 0o600)).To(Succeed())
			setEnv("ADDRESS_BOOK_PATH", path)

			format, err := config.NewFormat()
			Expect(err).NotTo(HaveOccurred())
			book, err := format.AddressBook()
			Expect(err).NotTo(HaveOccurred())
			ticker, ok := book.Table(addresses.Rinkeby).ExchangeTicker("0x1")
			Expect(ok).To(BeTrue())
			Expect(ticker).To(Equal("DAI"))
		})
	})
})
