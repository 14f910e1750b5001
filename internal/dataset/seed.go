package dataset

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/model"
)

// SeedCustomers returns the built-in borrower list of Janakalyan Bank.
func SeedCustomers() []model.Customer {
	return []model.Customer{
		{ID: "1", Name: "Rajesh Kumar", BusinessName: "Kumar Enterprises", LoanAccountNumber: "BL0001234", LoanAmount: rupees(5000000), DisbursementDate: day(2024, 1, 15), Sector: "Manufacturing", IntendedPurpose: "Purchase of machinery for textile manufacturing"},
		{ID: "2", Name: "Priya Sharma", BusinessName: "Sharma Trading Co.", LoanAccountNumber: "BL0001235", LoanAmount: rupees(3000000), DisbursementDate: day(2024, 1, 20), Sector: "Trading", IntendedPurpose: "Working capital for wholesale business"},
		{ID: "3", Name: "Mohammed Ali", BusinessName: "Ali Exports", LoanAccountNumber: "BL0001236", LoanAmount: rupees(7500000), DisbursementDate: day(2024, 1, 10), Sector: "Export", IntendedPurpose: "Export business expansion"},
		{ID: "4", Name: "Anita Patel", BusinessName: "Patel Agro Industries", LoanAccountNumber: "BL0001237", LoanAmount: rupees(4500000), DisbursementDate: day(2024, 2, 1), Sector: "Agriculture", IntendedPurpose: "Setting up food processing unit"},
		{ID: "5", Name: "Suresh Reddy", BusinessName: "Reddy Technologies", LoanAccountNumber: "BL0001238", LoanAmount: rupees(6000000), DisbursementDate: day(2024, 2, 5), Sector: "Technology", IntendedPurpose: "Software development center setup"},
		{ID: "6", Name: "Meera Desai", BusinessName: "Desai Pharmaceuticals", LoanAccountNumber: "BL0001239", LoanAmount: rupees(8000000), DisbursementDate: day(2024, 2, 10), Sector: "Healthcare", IntendedPurpose: "Medical equipment purchase"},
		{ID: "7", Name: "Vikram Singh", BusinessName: "Singh Logistics", LoanAccountNumber: "BL0001240", LoanAmount: rupees(5500000), DisbursementDate: day(2024, 2, 15), Sector: "Transportation", IntendedPurpose: "Fleet expansion"},
		{ID: "8", Name: "Lakshmi Nair", BusinessName: "Kerala Foods", LoanAccountNumber: "BL0001241", LoanAmount: rupees(2500000), DisbursementDate: day(2024, 2, 20), Sector: "Food & Beverage", IntendedPurpose: "Restaurant chain expansion"},
		{ID: "9", Name: "Abdul Rahman", BusinessName: "Rahman Textiles", LoanAccountNumber: "BL0001242", LoanAmount: rupees(4000000), DisbursementDate: day(2024, 2, 25), Sector: "Textile", IntendedPurpose: "Garment factory setup"},
		{ID: "10", Name: "Kavita Joshi", BusinessName: "Joshi Education Services", LoanAccountNumber: "BL0001243", LoanAmount: rupees(3500000), DisbursementDate: day(2024, 3, 1), Sector: "Education", IntendedPurpose: "Educational institute expansion"},
	}
}

// SeedTransactions returns the built-in transactions for SeedCustomers.
func SeedTransactions() []model.Transaction {
	return []model.Transaction{
		seedTxn("1", "1", day(2024, 1, 16), model.TypeCredit, model.ModeRTGS, 5000000, "Loan Amount Disbursement", "RTGS24016ABC", "LOAN_DISBURSEMENT", model.AlignmentAligned),
		seedTxn("2", "1", day(2024, 1, 17), model.TypeDebit, model.ModeCheque, 2000000, "Equipment Purchase - Textile Machinery", "CHQ002345", "MACHINERY", model.AlignmentAligned),
		seedTxn("3", "1", day(2024, 1, 18), model.TypeDebit, model.ModeNEFT, 1000000, "Raw Material Purchase", "NEFT24018XYZ", "RAW_MATERIALS", model.AlignmentAligned),
		seedTxn("4", "1", day(2024, 1, 19), model.TypeDebit, model.ModeCash, 500000, "General Expenses", "CASH24019DEF", "MISC_EXPENSES", model.AlignmentDeviated),
		seedTxn("5", "2", day(2024, 1, 21), model.TypeCredit, model.ModeRTGS, 3000000, "Loan Amount Disbursement", "RTGS24021GHI", "LOAN_DISBURSEMENT", model.AlignmentAligned),
		seedTxn("6", "2", day(2024, 1, 22), model.TypeDebit, model.ModeNEFT, 1500000, "Inventory Purchase", "NEFT24022JKL", "INVENTORY", model.AlignmentAligned),
		seedTxn("7", "3", day(2024, 1, 11), model.TypeCredit, model.ModeRTGS, 7500000, "Loan Amount Disbursement", "RTGS24011MNO", "LOAN_DISBURSEMENT", model.AlignmentAligned),
		seedTxn("8", "3", day(2024, 1, 12), model.TypeDebit, model.ModeCheque, 3000000, "Export Processing Equipment", "CHQ002346", "MACHINERY", model.AlignmentAligned),
		seedTxn("9", "4", day(2024, 2, 2), model.TypeCredit, model.ModeRTGS, 4500000, "Loan Amount Disbursement", "RTGS24032PQR", "LOAN_DISBURSEMENT", model.AlignmentAligned),
		seedTxn("10", "5", day(2024, 2, 6), model.TypeCredit, model.ModeRTGS, 6000000, "Loan Amount Disbursement", "RTGS24033STU", "LOAN_DISBURSEMENT", model.AlignmentAligned),
		seedTxn("11", "5", day(2024, 2, 7), model.TypeDebit, model.ModeCash, 1000000, "Personal Withdrawal", "CASH24034VWX", "PERSONAL", model.AlignmentDeviated),
		seedTxn("12", "10", day(2024, 3, 2), model.TypeCredit, model.ModeRTGS, 3500000, "Loan Amount Disbursement", "RTGS24302ABC", "LOAN_DISBURSEMENT", model.AlignmentAligned),
		seedTxn("13", "10", day(2024, 3, 3), model.TypeDebit, model.ModeCash, 1000000, "Personal Expenses", "CASH24303DEF", "PERSONAL", model.AlignmentDeviated),
		seedTxn("14", "10", day(2024, 3, 4), model.TypeDebit, model.ModeNEFT, 1500000, "Investment in Personal Property", "NEFT24304GHI", "PERSONAL", model.AlignmentDeviated),
	}
}

func seedTxn(id, customerID string, date time.Time, typ model.TransactionType, mode model.Mode, amount int64,
	desc, ref, category string, alignment model.Alignment,
) model.Transaction {
	return model.Transaction{
		ID:               id,
		CustomerID:       customerID,
		Date:             date,
		Type:             typ,
		Mode:             mode,
		Amount:           rupees(amount),
		Description:      desc,
		Reference:        ref,
		Category:         category,
		PurposeAlignment: alignment,
	}
}

func rupees(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
