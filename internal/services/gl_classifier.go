package services

import (
	"strings"

	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/models"
)

// GLClassifier decides what a loosely tagged gl account stands for. Name based
// matching is case-insensitive and can misclassify similarly named accounts.
type GLClassifier interface {
	IsBank(account models.GLAccount) bool
	IsReceivable(account models.GLAccount) bool
	IsSecurityDeposit(account models.GLAccount) bool
	IsPrepayment(account models.GLAccount) bool
	IsEscrow(accountName string) bool
	IsOwnerDraw(accountName string) bool
	IsManagementFee(accountName string) bool
	IsPropertyTax(accountName string) bool
}

var (
	defaultBankKeywords            = []string{"bank", "checking", "operating", "trust"}
	defaultReceivableKeywords      = []string{"receivable"}
	defaultSecurityDepositKeywords = []string{"deposit"}
	defaultPrepaymentKeywords      = []string{"prepay", "prepaid", "advance"}
	defaultEscrowKeywords          = []string{"tax escrow"}
	defaultOwnerDrawNames          = []string{"owner draw"}
	defaultManagementFeeKeywords   = []string{"management fee"}
	defaultPropertyTaxKeywords     = []string{"property tax"}
)

// KeywordClassifier matches lower-cased substrings. Owner draw names must match
// the whole trimmed account name.
type KeywordClassifier struct {
	bank            []string
	receivable      []string
	securityDeposit []string
	prepayment      []string
	escrow          []string
	ownerDraw       []string
	managementFee   []string
	propertyTax     []string
}

var _ GLClassifier = (*KeywordClassifier)(nil)

func DefaultClassifier() *KeywordClassifier {
	return NewKeywordClassifier(config.ClassifierConfig{})
}

// NewKeywordClassifier uses the configured lists, an empty list keeps the default.
func NewKeywordClassifier(cfg config.ClassifierConfig) *KeywordClassifier {
	return &KeywordClassifier{
		bank:            keywordsOrDefault(cfg.BankKeywords, defaultBankKeywords),
		receivable:      keywordsOrDefault(cfg.ReceivableKeywords, defaultReceivableKeywords),
		securityDeposit: keywordsOrDefault(cfg.SecurityDepositKeywords, defaultSecurityDepositKeywords),
		prepayment:      keywordsOrDefault(cfg.PrepaymentKeywords, defaultPrepaymentKeywords),
		escrow:          keywordsOrDefault(cfg.EscrowKeywords, defaultEscrowKeywords),
		ownerDraw:       keywordsOrDefault(cfg.OwnerDrawNames, defaultOwnerDrawNames),
		managementFee:   keywordsOrDefault(cfg.ManagementFeeKeywords, defaultManagementFeeKeywords),
		propertyTax:     keywordsOrDefault(cfg.PropertyTaxKeywords, defaultPropertyTaxKeywords),
	}
}

func keywordsOrDefault(configured, def []string) []string {
	src := configured
	if len(src) == 0 {
		src = def
	}
	out := make([]string, 0, len(src))
	for _, k := range src {
		if k = normalizeName(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// squash drops separators so "Accounts Receivable" and "accounts_receivable" compare equal.
func squash(s string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(normalizeName(s))
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func (k *KeywordClassifier) IsReceivable(account models.GLAccount) bool {
	if strings.Contains(squash(account.SubType), "accountsreceivable") {
		return true
	}
	return containsAny(normalizeName(account.Name), k.receivable) ||
		strings.Contains(squash(account.Name), "accountsreceivable")
}

// IsBank trusts the routing flag first, then falls back to cash-like names on
// asset accounts. Excluded and receivable accounts are never bank accounts.
func (k *KeywordClassifier) IsBank(account models.GLAccount) bool {
	if account.ExcludeFromCashBalances || k.IsReceivable(account) {
		return false
	}
	if account.IsBankAccount {
		return true
	}
	if account.IsSecurityDepositLiability || account.Type != models.GLAccountTypeAsset {
		return false
	}
	return strings.Contains(normalizeName(account.SubType), "cash") ||
		containsAny(normalizeName(account.Name), k.bank)
}

func (k *KeywordClassifier) IsSecurityDeposit(account models.GLAccount) bool {
	if account.ExcludeFromCashBalances {
		return false
	}
	if account.IsSecurityDepositLiability {
		return true
	}
	if account.IsBankAccount || account.Type != models.GLAccountTypeLiability {
		return false
	}
	return containsAny(normalizeName(account.SubType), k.securityDeposit) ||
		containsAny(normalizeName(account.Category), k.securityDeposit) ||
		containsAny(normalizeName(account.Name), k.securityDeposit)
}

// IsPrepayment matches liability accounts holding rent paid in advance. A
// security deposit account is never a prepayment account.
func (k *KeywordClassifier) IsPrepayment(account models.GLAccount) bool {
	if account.ExcludeFromCashBalances || account.Type != models.GLAccountTypeLiability {
		return false
	}
	if k.IsSecurityDeposit(account) {
		return false
	}
	return containsAny(normalizeName(account.SubType), k.prepayment) ||
		containsAny(normalizeName(account.Category), k.prepayment) ||
		containsAny(normalizeName(account.Name), k.prepayment)
}

func (k *KeywordClassifier) IsEscrow(accountName string) bool {
	return containsAny(normalizeName(accountName), k.escrow)
}

func (k *KeywordClassifier) IsOwnerDraw(accountName string) bool {
	name := normalizeName(accountName)
	for _, n := range k.ownerDraw {
		if name == n {
			return true
		}
	}
	return false
}

func (k *KeywordClassifier) IsManagementFee(accountName string) bool {
	return containsAny(normalizeName(accountName), k.managementFee)
}

func (k *KeywordClassifier) IsPropertyTax(accountName string) bool {
	return containsAny(normalizeName(accountName), k.propertyTax)
}

// CashProxySelector picks the line standing in for cash on a transaction that
// has no bank line. It returns the index into lines, or false when none applies.
type CashProxySelector func(trxType models.TransactionType, lines []models.LedgerLine, classifier GLClassifier) (int, bool)

// FirstNonBankAssetOnPayment selects the first asset line of a Payment that is
// neither a bank account, a receivable nor excluded from cash, for example
// undeposited funds.
func FirstNonBankAssetOnPayment(trxType models.TransactionType, lines []models.LedgerLine, classifier GLClassifier) (int, bool) {
	if !trxType.IsPayment() {
		return 0, false
	}
	for i, l := range lines {
		if l.GLAccountType != models.GLAccountTypeAsset || l.GLExcludeFromCash {
			continue
		}
		acc := l.Account()
		if classifier.IsBank(acc) || classifier.IsReceivable(acc) {
			continue
		}
		return i, true
	}
	return 0, false
}

// NoCashProxy counts bank lines only.
func NoCashProxy(models.TransactionType, []models.LedgerLine, GLClassifier) (int, bool) {
	return 0, false
}
