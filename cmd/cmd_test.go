package cmd_test

import (
	"bytes"
	"os"

	"txnotify/cmd"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Commands", func() {
	var (
		out *bytes.Buffer
		run func(args ...string) error
	)

	BeforeEach(func() {
		for _, key := range []string{"NETWORK_ID", "ADDRESS_BOOK_PATH"} {
			if old, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, old)
				Expect(os.Unsetenv(key)).To(Succeed())
			}
		}

		out = new(bytes.Buffer)
		run = func(args ...string) error {
			root := cmd.NewRootCmd()
			root.SetOut(out)
			root.SetErr(new(bytes.Buffer))
			root.SetArgs(args)
			return root.Execute()
		}
	})

	Describe("format", func() {
		It("prints the message for a mainnet approve", func() {
			err := run("format", "approve", "txSent",
				"--param", "0x09cabEC1eAd1c0Ba254B09efb3EE13841712bE14")
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("Sending transaction to unlock DAI\n"))
		})

		It("uses the table of the requested network", func() {
			err := run("format", "ethToTokenSwapInput", "txConfirmed",
				"--network-id", "4",
				"--to", "0x77dB9C915809e7BE439D2AB21032B1b8B58F6891",
				"-p", "1", "-p", "1700000000")
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("Your swap from ETH to DAI is complete! Woohoo!\n"))
		})

		It("fails for methods without messages", func() {
			Expect(run("format", "transfer", "txSent")).To(MatchError(ContainSubstring("no message")))
			Expect(out.String()).To(BeEmpty())
		})

		It("fails for unknown event codes", func() {
			Expect(run("format", "approve", "txSpeedUp")).To(MatchError(ContainSubstring("unknown event code")))
		})

		It("requires both arguments", func() {
			Expect(run("format", "approve")).To(HaveOccurred())
		})
	})

	Describe("version", func() {
		It("prints the build version", func() {
			Expect(run("version")).To(Succeed())
			Expect(out.String()).To(Equal("txnotify dev\n"))
		})
	})
})
