package logger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dwarvesf/payout-backend/internal/types/environments"
)

var _ = Describe("Logger", func() {
	var logger *Logger

	Describe("#New", func() {
		It("should create a new logger with production config when environment is production", func() {
			logger = New(environments.Production)
			Expect(logger).NotTo(BeNil())
			Expect(logger.wrappedLogger).NotTo(BeNil())
		})

		It("should create a new logger with development config when environment is development", func() {
			logger = New(environments.Development)
			Expect(logger).NotTo(BeNil())
			Expect(logger.wrappedLogger).NotTo(BeNil())
		})

		It("should create a new logger with test config when environment is test", func() {
			logger = New(environments.Test)
			Expect(logger).NotTo(BeNil())
			Expect(logger.wrappedLogger).NotTo(BeNil())
		})

		It("should fall back to production config when environment is unknown", func() {
			logger = New(environments.Environment("unknown"))
			Expect(logger).NotTo(BeNil())

			zapLogger := logger.wrappedLogger.WithOptions(zap.AddCaller())
			core := zapLogger.Core()
			Expect(core.Enabled(zapcore.InfoLevel)).To(BeTrue())
			Expect(core.Enabled(zapcore.DebugLevel)).To(BeFalse())
		})
	})

	Describe("#Info", func() {
		BeforeEach(func() {
			logger = New(environments.Test)
		})

		It("should log messages with string map fields without panicking", func() {
			Expect(func() {
				logger.Info("withdrawal processed", map[string]string{"txHash": "0xabc"})
			}).NotTo(Panic())
		})

		It("should log messages without fields", func() {
			Expect(func() {
				logger.Info("no fields")
			}).NotTo(Panic())
		})
	})
})

var _ = Describe("Logger Environment", func() {
	Describe("#newProductionLoggerConfig", func() {
		It("should return the correct production logger configuration", func() {
			cfg := newProductionLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.Development).To(BeFalse())
			Expect(cfg.Encoding).To(Equal("json"))
			Expect(cfg.OutputPaths).To(Equal([]string{"stdout"}))
			Expect(cfg.ErrorOutputPaths).To(Equal([]string{"stderr"}))
		})
	})

	Describe("#newDevelopmentLoggerConfig", func() {
		It("should return the correct development logger configuration", func() {
			cfg := newDevelopmentLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.DebugLevel))
			Expect(cfg.Development).To(BeTrue())
			Expect(cfg.DisableCaller).To(BeTrue())
			Expect(cfg.DisableStacktrace).To(BeTrue())
			Expect(cfg.Encoding).To(Equal("console"))
		})
	})

	Describe("#newTestLoggerConfig", func() {
		It("should return the correct test logger configuration", func() {
			cfg := newTestLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.OutputPaths).To(BeEmpty())
			Expect(cfg.ErrorOutputPaths).To(BeEmpty())
		})
	})
})
