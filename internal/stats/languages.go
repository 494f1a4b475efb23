// Package stats turns raw GitHub activity into the aggregated statistics
// record: language distribution, contribution series and streaks.
package stats

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/nahidn4p/git-stat-generator/internal/entities"
	"github.com/nahidn4p/git-stat-generator/internal/github"
)

const (
	// topLanguages caps the returned distribution.
	topLanguages = 8
	// bytesPerKB converts the summary endpoint's size field to bytes.
	bytesPerKB = 1024
)

// LanguageSource fetches the authoritative per-language byte breakdown
// for a single repository.
type LanguageSource interface {
	Languages(ctx context.Context, owner, repo string) (map[string]int64, error)
}

// AggregateLanguages builds a ranked percentage distribution over the
// user's repositories. Every repository with a primary language adds a
// size-based byte estimate; for at most detailLimit repositories the
// authoritative byte counts are fetched on top. A failed detail fetch
// skips that repository and continues.
func AggregateLanguages(ctx context.Context, log *zap.SugaredLogger, src LanguageSource, repos []github.Repo, detailLimit int) []entities.LanguageStat {
	bytesByLang := map[string]int64{}
	var order []string

	add := func(lang string, n int64) {
		if _, seen := bytesByLang[lang]; !seen {
			order = append(order, lang)
		}
		bytesByLang[lang] += n
	}

	for _, r := range repos {
		if r.Language != "" {
			add(r.Language, r.Size*bytesPerKB)
		}
	}

	detail := repos
	if len(detail) > detailLimit {
		detail = detail[:detailLimit]
	}
	for _, r := range detail {
		langs, err := src.Languages(ctx, r.Owner.Login, r.Name)
		if err != nil {
			log.Debugw("language detail skipped", "repo", r.Name, "error", err)
			continue
		}
		// Sorted keys keep the first-seen tie order deterministic.
		keys := make([]string, 0, len(langs))
		for lang := range langs {
			keys = append(keys, lang)
		}
		sort.Strings(keys)
		for _, lang := range keys {
			add(lang, langs[lang])
		}
	}

	var total int64
	for _, n := range bytesByLang {
		total += n
	}
	if total == 0 {
		return nil
	}

	// Stable sort keeps first-seen order among equal byte counts.
	sort.SliceStable(order, func(i, j int) bool {
		return bytesByLang[order[i]] > bytesByLang[order[j]]
	})
	if len(order) > topLanguages {
		order = order[:topLanguages]
	}

	out := make([]entities.LanguageStat, 0, len(order))
	for _, lang := range order {
		pct := float64(bytesByLang[lang]) / float64(total) * 100
		out = append(out, entities.LanguageStat{
			Name:       lang,
			Percentage: math.Round(pct*10) / 10,
		})
	}
	return out
}
