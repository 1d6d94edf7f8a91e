package main

import (
	"fmt"
	"io"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/address-book/internal/addressbook"
	"github.com/username/address-book/internal/assistant"
	"github.com/username/address-book/internal/config"
	"github.com/username/address-book/internal/report"
	"github.com/username/address-book/pkg/dateutil"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger = zap.NewNop()
	stdout     io.Writer   = os.Stdout
	clock                  = time.Now
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "address-book",
		Short:         "In-memory contact book with birthday reminders",
		Long:          "Keep contacts with phones and birthdays, and find out whom to congratulate in the coming days",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				logger = initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")

	root.AddCommand(listCmd(), findCmd(), birthdaysCmd(), demoCmd(), shellCmd())

	return root
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book := seedBook(cfg.Contacts)
			fmt.Fprintln(stdout, book.ListRecords())
			return nil
		},
	}
}

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Show one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book := seedBook(cfg.Contacts)
			r, ok := book.Find(args[0])
			if !ok {
				return fmt.Errorf("contact %q not found", args[0])
			}
			fmt.Fprintln(stdout, r)
			if b, ok := r.Birthday(); ok {
				fmt.Fprintf(stdout, "Birthday: %s\n", b)
			}
			return nil
		},
	}
}

func birthdaysCmd() *cobra.Command {
	var dateStr string
	var days int
	var output string

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List greeting dates for birthdays in the coming days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(output)
			if err != nil {
				return err
			}

			ref, err := referenceDate(dateStr)
			if err != nil {
				return err
			}

			planner := newPlanner()
			if cmd.Flags().Changed("days") {
				if days < 0 {
					return fmt.Errorf("--days must not be negative")
				}
				planner.LookaheadDays = days
			}

			book := seedBook(cfg.Contacts)
			greetings := planner.Upcoming(book, ref)

			logger.Info("Upcoming birthdays computed",
				zap.String("reference_date", ref.Format("2006-01-02")),
				zap.Int("lookahead_days", planner.LookaheadDays),
				zap.String("leap_day", planner.LeapDay.String()),
				zap.Int("contacts", book.Len()),
				zap.Int("greetings", len(greetings)))

			return report.NewPrinter(stdout, format).Greetings(greetings, planner.LookaheadDays)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Reference date, YYYY-MM-DD or DD.MM.YYYY (default: today)")
	cmd.Flags().IntVar(&days, "days", addressbook.DefaultLookaheadDays, "Lookahead window in days (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, yaml or json")

	return cmd
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive assistant over an in-memory book seeded from config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := cfg.Birthdays.GetLocation()
			if err != nil {
				return err
			}
			book := seedBook(cfg.Contacts)
			a := assistant.New(book, newPlanner(), func() time.Time { return today(loc) }, logger)

			logger.Info("Shell started", zap.Int("contacts", book.Len()))
			return a.Run(os.Stdin, stdout, report.IsTTY(os.Stdin))
		},
	}
}

func newPlanner() addressbook.BirthdayPlanner {
	return addressbook.BirthdayPlanner{
		LookaheadDays: cfg.Birthdays.LookaheadDays,
		LeapDay:       cfg.Birthdays.GetLeapDayPolicy(),
	}
}

// referenceDate parses --date, or returns today in the configured timezone
func referenceDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		loc, err := cfg.Birthdays.GetLocation()
		if err != nil {
			return time.Time{}, err
		}
		return today(loc), nil
	}

	date, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date: %w", err)
	}
	return dateutil.CivilDate(date), nil
}

// today returns the current civil date as seen in loc
func today(loc *time.Location) time.Time {
	return dateutil.CivilDate(clock().In(loc))
}

// seedBook builds the in-memory book from configured contacts.
// Invalid entries are logged and skipped.
func seedBook(contacts []config.ContactConfig) *addressbook.AddressBook {
	book := addressbook.NewAddressBook(logger)

	for i, c := range contacts {
		r, err := buildRecord(c)
		if err != nil {
			logger.Warn("Skipping invalid contact",
				zap.Int("index", i),
				zap.String("name", c.Name),
				zap.Error(err))
			continue
		}
		book.AddRecord(r)
	}

	return book
}

func buildRecord(c config.ContactConfig) (*addressbook.Record, error) {
	r, err := addressbook.NewRecord(c.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if c.Birthday != "" {
		if err := r.AddBirthday(c.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	return zapLevel
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}
