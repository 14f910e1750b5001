package store

import (
	"strings"

	"github.com/janakalyan/loanwatch/internal/model"
)

// Store provides indexed, read-only access to a loaded dataset.
type Store struct {
	customers  []model.Customer
	txns       []model.Transaction
	byID       map[string]model.Customer
	byCustomer map[string][]model.Transaction
}

// New indexes customers and transactions. The slices are kept as given and must
// not be modified afterwards.
func New(customers []model.Customer, txns []model.Transaction) *Store {
	byID := make(map[string]model.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	byCustomer := make(map[string][]model.Transaction)
	for _, t := range txns {
		byCustomer[t.CustomerID] = append(byCustomer[t.CustomerID], t)
	}
	return &Store{customers: customers, txns: txns, byID: byID, byCustomer: byCustomer}
}

// Customers returns all customers in load order.
func (s *Store) Customers() []model.Customer {
	return s.customers
}

// Customer returns a customer by ID.
func (s *Store) Customer(id string) (model.Customer, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Transactions returns all transactions in load order.
func (s *Store) Transactions() []model.Transaction {
	return s.txns
}

// TransactionsFor returns a customer's transactions in load order. Unknown
// customers get an empty, non-nil slice.
func (s *Store) TransactionsFor(customerID string) []model.Transaction {
	if txns, ok := s.byCustomer[customerID]; ok {
		return txns
	}
	return []model.Transaction{}
}

// Search returns customers whose name, loan account number or business name
// contains term, ignoring case. An empty term matches everyone.
func (s *Store) Search(term string) []model.Customer {
	needle := strings.ToLower(strings.TrimSpace(term))
	var out []model.Customer
	for _, c := range s.customers {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.LoanAccountNumber), needle) ||
			strings.Contains(strings.ToLower(c.BusinessName), needle) {
			out = append(out, c)
		}
	}
	return out
}
