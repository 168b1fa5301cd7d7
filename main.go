// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/VienLe17081997/james-project/analysis"
	"github.com/VienLe17081997/james-project/bayes"
	"github.com/VienLe17081997/james-project/config"
	"github.com/VienLe17081997/james-project/domain"
	"github.com/VienLe17081997/james-project/loader"
	"github.com/VienLe17081997/james-project/log"
	"github.com/VienLe17081997/james-project/mail"
	"github.com/VienLe17081997/james-project/mailet"
	"github.com/VienLe17081997/james-project/persistence"
	"github.com/VienLe17081997/james-project/pipeline"

	"github.com/sirupsen/logrus"
)

const LearnConcurrency = 8

func main() {
	configFile := flag.String("config", "config.toml", "path to the toml configuration file")
	learn := flag.String("learn", "", "feed the mail on stdin into the corpus as \"ham\" or \"spam\" instead of classifying it")
	flag.Parse()

	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig(*configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	p, err := persistence.NewPersistence(conf.RepositoryPath, conf.SchemaPath)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not read mail from stdin")
	}

	if *learn != "" {
		learnMails(logger, p, conf, raw, domain.LearnType(*learn))
		return
	}

	classifyMail(logger, p, conf, raw)
}

func learnMails(logger *logrus.Logger, p *persistence.Persistence, conf *config.Config, raw []byte, learnType domain.LearnType) {
	feeder, err := analysis.NewBayesianAnalysisFeeder(
		p,
		bayes.NewExtractor(),
		analysis.FeedAs(learnType),
		analysis.MaxSize(conf.MaxSize),
	)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start feeder mailet")
	}

	raws := [][]byte{raw}
	if mail.IsMbox(raw) {
		raws, err = mail.SplitMbox(raw)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not split mbox input")
		}
	}

	mails := []*mailet.Mail{}
	for _, r := range raws {
		msg, err := mail.Parse(r)
		if err != nil {
			logger.WithField("error", err).Warn("Skipping unparsable mail")
			continue
		}
		mails = append(mails, mailet.NewMail(msg.FromAddress(), msg.RecipientAddresses(), msg))
	}

	if len(mails) == 0 {
		logger.Fatal("No mails to learn")
	}

	logger.WithFields(logrus.Fields{"learntype": learnType, "mails": len(mails)}).Info("Learning mails")
	results := pipeline.NewPipeline(feeder).ProcessAll(mails, LearnConcurrency)

	failed := 0
	for _, result := range results {
		if result == nil {
			continue
		}

		if errors.Is(result, domain.ErrStorageUnavailable) {
			logger.WithField("error", result).Fatal("Learning mails failed, corpus store unavailable")
		}
		failed++
	}

	if failed > 0 {
		logger.WithFields(logrus.Fields{"failed": failed, "mails": len(mails)}).Warn("Some mails could not be learned")
	}
}

func classifyMail(logger *logrus.Logger, p *persistence.Persistence, conf *config.Config, raw []byte) {
	msg, err := mail.Parse(raw)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not parse mail")
	}
	m := mailet.NewMail(msg.FromAddress(), msg.RecipientAddresses(), msg)

	analyzer, err := bayes.NewAnalyzer(
		bayes.MaxInterestingTokens(conf.MaxInterestingTokens),
		bayes.TokenProbabilityBounds(conf.MinTokenProbability, conf.MaxTokenProbability),
		bayes.NeutralTokenProbability(conf.NeutralTokenProbability),
	)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start analyzer")
	}

	corpusLoader := loader.NewCorpusLoader(p, analyzer, conf.ReloadInterval.Duration)
	err = corpusLoader.Rebuild()
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load corpus")
	}
	corpusLoader.Start()
	defer corpusLoader.Stop()

	analysisConfigs := []analysis.ConfigFunc{
		analysis.HeaderName(conf.HeaderName),
		analysis.MaxSize(conf.MaxSize),
		analysis.TagSubject(conf.TagSubject),
	}
	if conf.IgnoreLocalSender {
		analysisConfigs = append(analysisConfigs, analysis.IgnoreLocalSender())
	}

	ba, err := analysis.NewBayesianAnalysis(
		analyzer,
		bayes.NewExtractor(),
		mailet.NewLocalServerList(conf.LocalDomains),
		analysisConfigs...,
	)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start analysis mailet")
	}

	logger.WithFields(logrus.Fields{"sender": m.Sender, "recipients": m.Recipients}).Info("Classifying mail")
	err = pipeline.NewPipeline(ba).Process(m)
	if err != nil {
		logger.WithField("error", err).Error("Could not classify mail, passing it through unchanged")
	}

	err = m.Message.WriteTo(os.Stdout)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not write mail")
	}
}
