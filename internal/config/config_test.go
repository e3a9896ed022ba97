package config_test

import (
	"os"
	"path/filepath"
	"time"
	"usdcdash/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var envKeys = []string{
	"API_PORT", "NETWORK", "ETH_NODE_URL", "DB_CONNECTION_URL", "JWT_SECRET",
	"EXPLORER_API_URL", "CHAIN_ID", "USDC_CONTRACT_ADDRESS", "OPERATORS", "WALLET_PRIVATE_KEY",
}

var _ = Describe("NewApp", func() {
	var (
		app  config.App
		args []string
		err  error
		wd   string
	)

	BeforeEach(func() {
		for _, key := range envKeys {
			Expect(os.Unsetenv(key)).To(Succeed())
		}

		wd, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(GinkgoT().TempDir())).To(Succeed())

		args = []string{
			"--node-url", "https://node.example",
			"--db-url", "postgres://localhost/usdcdash",
			"--jwt-secret", "secret",
		}
	})

	AfterEach(func() {
		Expect(os.Chdir(wd)).To(Succeed())
		for _, key := range envKeys {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	JustBeforeEach(func() {
		app, err = config.NewApp(args)
	})

	When("only the required settings are given", func() {
		It("should fill the sepolia defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.Network).To(Equal(config.NetworkSepolia))
			Expect(app.ExplorerURL).To(Equal("https://api-sepolia.etherscan.io/api"))
			Expect(app.ChainID).To(Equal(int64(11155111)))
			Expect(app.TokenAddress).To(Equal("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"))
			Expect(app.ExplorerMinInterval).To(Equal(600 * time.Millisecond))
			Expect(app.TransfersEnabled()).To(BeFalse())
		})
	})

	When("mainnet is selected", func() {
		BeforeEach(func() {
			Expect(os.Setenv("NETWORK", "mainnet")).To(Succeed())
		})

		It("should fill the mainnet defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.ExplorerURL).To(Equal("https://api.etherscan.io/v2/api"))
			Expect(app.ChainID).To(Equal(int64(1)))
			Expect(app.TokenAddress).To(Equal("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"))
		})
	})

	When("network values are overridden", func() {
		BeforeEach(func() {
			args = append(args, "--chain-id", "31337", "--explorer-url", "http://localhost:9000/api")
		})

		It("should keep the overrides", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.ChainID).To(Equal(int64(31337)))
			Expect(app.ExplorerURL).To(Equal("http://localhost:9000/api"))
		})
	})

	When("the network is unknown", func() {
		BeforeEach(func() {
			args = append(args, "--network", "goerli")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("Network")))
		})
	})

	When("a required setting is missing", func() {
		BeforeEach(func() {
			args = []string{"--node-url", "https://node.example"}
		})

		It("should name the missing settings", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("DBConnectionURL"))
			Expect(err.Error()).To(ContainSubstring("JWTSecret"))
		})
	})

	When("settings come from a .env file", func() {
		BeforeEach(func() {
			content := "ETH_NODE_URL=https://dotenv.example\nOPERATORS='alice:$2a$10$abc,bob:$2a$10$def'\n"
			Expect(os.WriteFile(filepath.Join(".", ".env"), []byte(content), 0o600)).To(Succeed())
			args = []string{"--db-url", "postgres://localhost/usdcdash", "--jwt-secret", "secret"}
		})

		It("should read them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.NodeURL).To(Equal("https://dotenv.example"))

			seeds, err := app.OperatorSeeds()
			Expect(err).NotTo(HaveOccurred())
			Expect(seeds).To(Equal([]config.Operator{
				{Username: "alice", PasswordHash: "$2a$10$abc"},
				{Username: "bob", PasswordHash: "$2a$10$def"},
			}))
		})
	})

	When("an operator entry is malformed", func() {
		BeforeEach(func() {
			args = append(args, "--operator", "alice")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("username:bcrypt-hash")))
		})
	})
})
