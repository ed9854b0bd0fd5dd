package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/amirasaad/ebanking/pkg/domain/account"
	"github.com/amirasaad/ebanking/pkg/domain/transaction"
	"github.com/amirasaad/ebanking/pkg/domain/user"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	success = color.New(color.FgGreen, color.Bold)
	notice  = color.New(color.FgYellow)
	failure = color.New(color.FgRed, color.Bold)
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func printUsers(w io.Writer, users []*user.User) {
	if len(users) == 0 {
		notice.Fprintln(w, "No users registered")
		return
	}
	table := newTable(w, "ID", "First name", "Last name")
	for _, u := range users {
		table.Append([]string{u.ID, u.FirstName, u.LastName})
	}
	table.Render()
}

func printAccounts(w io.Writer, accounts []*account.Account) {
	if len(accounts) == 0 {
		notice.Fprintln(w, "No accounts")
		return
	}
	table := newTable(w, "IBAN", "Type", "Balance")
	for _, a := range accounts {
		table.Append([]string{a.IBAN, a.Type, formatAmount(a.Balance)})
	}
	table.Render()
}

func printTransactions(w io.Writer, txs []*transaction.Transaction) {
	if len(txs) == 0 {
		notice.Fprintln(w, "No transactions")
		return
	}
	table := newTable(w, "Date", "Amount")
	for _, t := range txs {
		table.Append([]string{t.Date.Format(transaction.DateLayout), formatAmount(t.Amount)})
	}
	table.Render()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func printError(w io.Writer, err error) {
	failure.Fprintln(w, fmt.Sprintf("Error: %v", err))
}
