// Package stores embeds a small sample data set for the three flat-file
// stores. Each file carries one line that must be skipped on load.
package stores

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/amirasaad/ebanking/pkg/config"
	"github.com/spf13/afero"
)

//go:embed users_file.txt
var usersTxt string

//go:embed accounts_file.txt
var accountsTxt string

//go:embed transactions_file.txt
var transactionsTxt string

// Sample counts: valid records per store after malformed lines are skipped.
const (
	SampleUsers        = 2
	SampleAccounts     = 3
	SampleTransactions = 3
)

// Seed writes the sample stores into fs at the paths configured in store.
// If dir is not empty, files are copied from dir on the host filesystem
// instead of the embedded set.
func Seed(fs afero.Fs, store *config.Store, dir string) error {
	files := []struct {
		name, path, embedded string
	}{
		{store.UsersFile, store.UsersPath(), usersTxt},
		{store.AccountsFile, store.AccountsPath(), accountsTxt},
		{store.TransactionsFile, store.TransactionsPath(), transactionsTxt},
	}
	if err := fs.MkdirAll(store.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	src := afero.NewOsFs()
	for _, f := range files {
		b := []byte(f.embedded)
		if dir != "" {
			var err error
			b, err = afero.ReadFile(src, filepath.Join(dir, f.name))
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
		}
		if err := afero.WriteFile(fs, f.path, b, 0o644); err != nil {
			return fmt.Errorf("failed to seed %s: %w", f.path, err)
		}
	}
	return nil
}
