package services

import (
	"github.com/propledger/go-fp-rollup/internal/common/cache"
	"github.com/propledger/go-fp-rollup/internal/common/flag"
	"github.com/propledger/go-fp-rollup/internal/common/metrics"
	"github.com/propledger/go-fp-rollup/internal/common/publisher"
	"github.com/propledger/go-fp-rollup/internal/common/retry"
	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo      repositories.SQLRepository
	cacheRepo    repositories.CacheRepository
	balanceCache cache.Client[models.AuthoritativeBalance]

	driftAlertPub publisher.Publisher
	retryer       retry.Retryer
	flag          flag.Client
	metrics       metrics.Metrics

	classifier GLClassifier
	cashProxy  CashProxySelector

	common service

	Finance *finance
	Ledger  *ledger
	Summary *summary
	Recon   *recon
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	balanceCache cache.Client[models.AuthoritativeBalance],
	driftAlertPub publisher.Publisher,
	retryer retry.Retryer,
	flag flag.Client,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:          conf,
		sqlRepo:       sqlRepo,
		cacheRepo:     cacheRepo,
		balanceCache:  balanceCache,
		driftAlertPub: driftAlertPub,
		retryer:       retryer,
		flag:          flag,
		metrics:       metrics,
		classifier:    NewKeywordClassifier(conf.Classifier),
		cashProxy:     FirstNonBankAssetOnPayment,
	}
	if !conf.Rollup.UseCashProxy {
		srv.cashProxy = NoCashProxy
	}

	srv.common.srv = srv
	srv.Finance = (*finance)(&srv.common)
	srv.Ledger = (*ledger)(&srv.common)
	srv.Summary = (*summary)(&srv.common)
	srv.Recon = (*recon)(&srv.common)

	return srv
}
