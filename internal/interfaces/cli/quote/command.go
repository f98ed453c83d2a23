package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	appcatalog "github.com/jaras-platform/jaras/internal/application/catalog"
	pricingUsecases "github.com/jaras-platform/jaras/internal/application/pricing/usecases"
	"github.com/jaras-platform/jaras/internal/infrastructure/database"
	"github.com/jaras-platform/jaras/internal/interfaces/cli/bootstrap"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

type options struct {
	env        string
	configPath string
	lang       string
	vat        bool
	asJSON     bool
	addons     []string
	noAddons   bool
}

func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a subscription from the command line",
		Long:  `Compute a new-customer or plan-change quote against the configured catalog and print the breakdown.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.lang, "lang", "en", "Output language (en, ar)")
	cmd.PersistentFlags().BoolVar(&opts.vat, "vat", false, "Show amounts including VAT")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print the quote as JSON")
	cmd.PersistentFlags().StringSliceVar(&opts.addons, "addons", nil, "Add-on codes to select instead of the plan defaults")
	cmd.PersistentFlags().BoolVar(&opts.noAddons, "no-addons", false, "Select no add-ons")

	cmd.AddCommand(
		newNewCustomerCommand(opts),
		newExistingCustomerCommand(opts),
	)

	return cmd
}

func newNewCustomerCommand(opts *options) *cobra.Command {
	var (
		units    int
		plan     string
		discount float64
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Quote a first subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			if units < 1 {
				return fmt.Errorf("--units must be at least 1")
			}
			if discount < 0 || discount > 100 {
				return fmt.Errorf("--discount must be between 0 and 100")
			}

			provider, settings, log, cleanup, err := setup(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			uc := pricingUsecases.NewQuoteNewCustomerUseCase(provider, settings, log)
			result, err := uc.Execute(cmd.Context(), pricingUsecases.QuoteNewCustomerCommand{
				Lang:               opts.language(),
				IncludeVat:         opts.includeVat(cmd),
				UnitsCount:         units,
				PlanCode:           plan,
				AddonCodes:         opts.addonCodes(),
				DiscountPercentage: decimal.NewFromFloat(discount),
			})
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return renderNewCustomer(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVarP(&units, "units", "u", 1, "Number of units")
	cmd.Flags().StringVarP(&plan, "plan", "p", "", "Plan code (default: recommended plan)")
	cmd.Flags().Float64VarP(&discount, "discount", "d", 0, "Additional discount percentage (0-100)")

	return cmd
}

func newExistingCustomerCommand(opts *options) *cobra.Command {
	var current, next, start, end string

	cmd := &cobra.Command{
		Use:   "existing",
		Short: "Quote a mid-term plan change",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, settings, log, cleanup, err := setup(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			uc := pricingUsecases.NewQuoteExistingCustomerUseCase(provider, settings, log)
			result, err := uc.Execute(cmd.Context(), pricingUsecases.QuoteExistingCustomerCommand{
				Lang:            opts.language(),
				IncludeVat:      opts.includeVat(cmd),
				CurrentPlanCode: current,
				NewPlanCode:     next,
				StartDate:       start,
				EndDate:         end,
				AddonCodes:      opts.addonCodes(),
			})
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return renderExistingCustomer(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current plan code (default: first plan)")
	cmd.Flags().StringVar(&next, "new", "", "New plan code (default: first plan)")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&end, "end", "", "Subscription end date YYYY-MM-DD (default: start + term)")

	return cmd
}

func (o *options) language() i18n.Lang {
	if lang, ok := i18n.ParseLang(o.lang); ok {
		return lang
	}
	return i18n.Default
}

// includeVat is nil unless --vat was given, so pricing.include_vat_by_default
// applies.
func (o *options) includeVat(cmd *cobra.Command) *bool {
	if !cmd.Flags().Changed("vat") {
		return nil
	}
	v := o.vat
	return &v
}

// addonCodes is nil (keep plan defaults) unless add-ons were chosen.
func (o *options) addonCodes() []string {
	if o.noAddons {
		return []string{}
	}
	return o.addons
}

// setup loads the catalog synchronously; the returned provider is ready
// or failed by the time the use case asks for it.
func setup(opts *options) (*appcatalog.Provider, pricingUsecases.Settings, logger.Interface, func(), error) {
	cfg, log, err := bootstrap.Init(opts.env, opts.configPath)
	if err != nil {
		return nil, pricingUsecases.Settings{}, nil, nil, err
	}
	// Keep stdout for the quote.
	logger.SetLevel(slog.LevelWarn)

	source, err := bootstrap.CatalogSource(cfg, log)
	if err != nil {
		return nil, pricingUsecases.Settings{}, nil, nil, err
	}

	cleanup := func() {
		_ = database.Close()
		_ = logger.Sync()
	}
	return appcatalog.NewProvider(source, nil, log), pricingUsecases.SettingsFromConfig(&cfg.Pricing), log, cleanup, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
