package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"passwordCheckerBackend/internal/core/domain"
)

func newGenerateCommand() *cobra.Command {
	var (
		count            int
		length           int
		noLowercase      bool
		noUppercase      bool
		noDigits         bool
		noSymbols        bool
		excludeAmbiguous bool
		minLowercase     int
		minUppercase     int
		minDigits        int
		minSymbols       int
		passphrase       bool
		words            int
		separator        string
		analyzeOutput    bool
		output           string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate secure passwords or passphrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.logger.Sync() //nolint:errcheck

			if count < 1 {
				count = 1
			}

			var secrets []domain.GeneratedSecret
			if passphrase {
				opts := domain.PassphraseOptions{
					WordCount:    words,
					Separator:    separator,
					Capitalize:   true,
					AppendNumber: true,
				}
				for i := 0; i < count; i++ {
					secret, err := app.service.GeneratePassphrase(cmd.Context(), opts)
					if err != nil {
						return err
					}
					secrets = append(secrets, secret)
				}
			} else {
				constraints := domain.GenerationConstraints{
					TotalLength:      length,
					EnabledClasses:   enabledClasses(noLowercase, noUppercase, noDigits, noSymbols),
					ExcludeAmbiguous: excludeAmbiguous,
					MinPerClass: map[domain.CharacterClass]int{
						domain.ClassLowercase: minLowercase,
						domain.ClassUppercase: minUppercase,
						domain.ClassDigit:     minDigits,
						domain.ClassSymbol:    minSymbols,
					},
				}
				secrets, err = app.service.GenerateBatch(cmd.Context(), count, constraints)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Generated Passwords:"))
			fmt.Fprintln(out, divider)
			for i, secret := range secrets {
				fmt.Fprintf(out, "%d. %s\n", i+1, secretStyle.Render(secret.Password))
				if analyzeOutput {
					r := secret.Report
					fmt.Fprintf(out, "   -> %s (%d/100) | %.2f bits | %s\n",
						r.Strength.DisplayName(), r.Score, r.EntropyBits, r.CrackTime)
				}
			}
			fmt.Fprintln(out, divider)

			if output != "" {
				if err := savePasswords(output, secrets); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", okStyle.Render("Passwords saved to:"), output)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().IntVarP(&length, "length", "l", 16, "password length")
	cmd.Flags().BoolVar(&noLowercase, "no-lowercase", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noUppercase, "no-uppercase", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().BoolVar(&excludeAmbiguous, "exclude-ambiguous", false, "exclude ambiguous characters (il1Lo0O)")
	cmd.Flags().IntVar(&minLowercase, "min-lowercase", 0, "minimum lowercase characters")
	cmd.Flags().IntVar(&minUppercase, "min-uppercase", 0, "minimum uppercase characters")
	cmd.Flags().IntVar(&minDigits, "min-digits", 0, "minimum digits")
	cmd.Flags().IntVar(&minSymbols, "min-symbols", 0, "minimum symbols")
	cmd.Flags().BoolVar(&passphrase, "passphrase", false, "generate a passphrase instead")
	cmd.Flags().IntVarP(&words, "words", "w", 4, "number of words for passphrase")
	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "passphrase separator")
	cmd.Flags().BoolVarP(&analyzeOutput, "analyze", "a", false, "analyze generated passwords")
	cmd.Flags().StringVarP(&output, "output", "o", "", "save passwords to file")

	return cmd
}

func enabledClasses(noLowercase, noUppercase, noDigits, noSymbols bool) []domain.CharacterClass {
	var classes []domain.CharacterClass
	if !noLowercase {
		classes = append(classes, domain.ClassLowercase)
	}
	if !noUppercase {
		classes = append(classes, domain.ClassUppercase)
	}
	if !noDigits {
		classes = append(classes, domain.ClassDigit)
	}
	if !noSymbols {
		classes = append(classes, domain.ClassSymbol)
	}
	return classes
}

func savePasswords(path string, secrets []domain.GeneratedSecret) error {
	var sb strings.Builder
	for _, secret := range secrets {
		sb.WriteString(secret.Password)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0600)
}
