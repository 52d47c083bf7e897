// Copyright 2019 cruzbit developers
// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import (
	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// checkpointDNSDomains lists the TXT-record domains queried per network. Each
// domain is expected to answer with one TXT record per checkpoint, formatted
// as "<height>:<hex-hash>".
var checkpointDNSDomains = map[NetworkType][]string{
	Main: {
		"checkpoints.electroneropulse.com.",
		"checkpoints.electroneropulse.org.",
		"checkpoints.electroneropulse.net.",
		"checkpoints.electroneropulse.info.",
	},
	Test: {
		"testpoints.electroneropulse.com.",
		"testpoints.electroneropulse.org.",
		"testpoints.electroneropulse.net.",
		"testpoints.electroneropulse.info.",
	},
	Stage: {
		"stagenetpoints.electroneropulse.com.",
		"stagenetpoints.electroneropulse.org.",
		"stagenetpoints.electroneropulse.net.",
		"stagenetpoints.electroneropulse.info.",
	},
}

// dnsCheckpointResolver abstracts the miekg/dns exchange so tests can substitute
// a canned set of TXT answers without touching the network.
type dnsCheckpointResolver interface {
	queryTXT(domain string) ([]string, error)
}

// defaultDNSResolver resolves TXT records against the public resolver at
// 8.8.8.8:53 using a plain dns.Client, matching the query style the seeder client code used for A
// record lookups against its peer seeders.
type defaultDNSResolver struct{}

func (defaultDNSResolver) queryTXT(domain string) ([]string, error) {
	c := &dns.Client{}
	m := &dns.Msg{}
	m.SetQuestion(domain, dns.TypeTXT)

	r, _, err := c.Exchange(m, "8.8.8.8:53")
	if err != nil {
		return nil, err
	}
	var records []string
	for _, answer := range r.Answer {
		if txt, ok := answer.(*dns.TXT); ok {
			records = append(records, txt.Txt...)
		}
	}
	return records, nil
}

// LoadFromDNS queries the well-known TXT-record seeders for net and adds every
// well-formed "<height>:<hash>" record to r. DNS failures and malformed records
// are logged and otherwise ignored: a checkpoint registry must never fail to
// start because a seed domain is unreachable.
func (r *CheckpointRegistry) LoadFromDNS(net NetworkType, logger *zap.Logger) error {
	return r.loadFromDNSResolver(net, defaultDNSResolver{}, logger)
}

func (r *CheckpointRegistry) loadFromDNSResolver(net NetworkType, resolver dnsCheckpointResolver, logger *zap.Logger) error {
	domains := checkpointDNSDomains[net]
	if len(domains) == 0 {
		return nil
	}

	for _, domain := range domains {
		records, err := resolver.queryTXT(domain)
		if err != nil {
			if logger != nil {
				logger.Warn("checkpoint DNS query failed", zap.String("domain", domain), zap.Error(err))
			}
			continue
		}
		for _, record := range records {
			height, hash, parseErr := parseHeightColonHash(record)
			if parseErr != nil {
				if logger != nil {
					logger.Warn("malformed checkpoint DNS record",
						zap.String("domain", domain), zap.String("record", record), zap.Error(parseErr))
				}
				continue
			}
			if addErr := r.Add(height, hash); addErr != nil {
				if logger != nil {
					logger.Warn("conflicting checkpoint DNS record",
						zap.String("domain", domain), zap.Error(addErr))
				}
			}
		}
	}
	return nil
}

// dnsDomains returns the TXT-record seed domains configured for n.
func (n NetworkType) dnsDomains() []string {
	return checkpointDNSDomains[n]
}
