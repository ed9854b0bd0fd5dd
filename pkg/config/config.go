package config

import "path/filepath"

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ebanking]"`
}

// Store locates the three flat-file stores. File names are joined onto Dir.
type Store struct {
	Dir              string `envconfig:"DIR" default:"data"`
	UsersFile        string `envconfig:"USERS_FILE" default:"users_file.txt"`
	AccountsFile     string `envconfig:"ACCOUNTS_FILE" default:"accounts_file.txt"`
	TransactionsFile string `envconfig:"TRANSACTIONS_FILE" default:"transactions_file.txt"`
}

func (s *Store) UsersPath() string {
	return filepath.Join(s.Dir, s.UsersFile)
}

func (s *Store) AccountsPath() string {
	return filepath.Join(s.Dir, s.AccountsFile)
}

func (s *Store) TransactionsPath() string {
	return filepath.Join(s.Dir, s.TransactionsFile)
}

type App struct {
	Env   string `envconfig:"APP_ENV" default:"development"`
	Log   *Log   `envconfig:"LOG"`
	Store *Store `envconfig:"EBANKING_STORE"`
}

// Default returns the configuration used when no environment is set.
func Default() *App {
	return &App{
		Env: "development",
		Log: &Log{
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05",
			Prefix:     "[ebanking]",
		},
		Store: &Store{
			Dir:              "data",
			UsersFile:        "users_file.txt",
			AccountsFile:     "accounts_file.txt",
			TransactionsFile: "transactions_file.txt",
		},
	}
}
