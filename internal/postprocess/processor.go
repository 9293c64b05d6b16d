// Package postprocess turns raw engine hits into the identifiers returned to API clients.
package postprocess

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/povarna/generative-ai-agents/vvquest-api/internal/config"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/engine"
)

var ErrMissingHash = errors.New("hit has no content hash")

// Processor applies, in order: identifier selection, regex strip, prefix, postfix.
type Processor struct {
	returnType config.ReturnType
	baseDir    string
	strip      *regexp.Regexp
	prefix     string
	postfix    string
}

func New(urls config.URLConfig, baseDir string) (*Processor, error) {
	if !urls.ReturnType.Valid() {
		return nil, fmt.Errorf("unsupported return type %q", urls.ReturnType)
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve base dir %q: %w", baseDir, err)
	}

	p := &Processor{
		returnType: urls.ReturnType,
		baseDir:    absBase,
		prefix:     urls.URLPrefix,
		postfix:    urls.URLPostfix,
	}

	if urls.PathReplaceRegex != "" {
		re, err := regexp.Compile(urls.PathReplaceRegex)
		if err != nil {
			return nil, fmt.Errorf("invalid path replace regex: %w", err)
		}
		p.strip = re
	}

	return p, nil
}

// ReturnHint is the hint the engine needs so that hits carry what this processor consumes.
func (p *Processor) ReturnHint() engine.ReturnHint {
	if p.returnType == config.ReturnTypeSha256 {
		return engine.ReturnHintHash
	}
	return engine.ReturnHintDefault
}

// Process keeps the order of hits. It fails on the first hit that cannot be rendered.
func (p *Processor) Process(hits []engine.Hit) ([]string, error) {
	results := make([]string, 0, len(hits))

	for i, hit := range hits {
		v, err := p.identifier(hit)
		if err != nil {
			return nil, fmt.Errorf("result %d (%s): %w", i, hit.Path, err)
		}

		if p.strip != nil {
			v = p.strip.ReplaceAllString(v, "")
		}

		if p.prefix != "" {
			v = p.prefix + "/" + v
		}

		if p.postfix != "" && !strings.HasSuffix(v, p.postfix) {
			v = v + p.postfix
		}

		results = append(results, v)
	}

	return results, nil
}

func (p *Processor) identifier(hit engine.Hit) (string, error) {
	switch p.returnType {
	case config.ReturnTypeAbsPath:
		return hit.Path, nil
	case config.ReturnTypeRelPath:
		target, err := filepath.Abs(hit.Path)
		if err != nil {
			return "", fmt.Errorf("cannot resolve %s: %w", hit.Path, err)
		}
		rel, err := filepath.Rel(p.baseDir, target)
		if err != nil {
			return "", fmt.Errorf("cannot make path relative to %s: %w", p.baseDir, err)
		}
		return rel, nil
	case config.ReturnTypeSha256:
		if hit.Hash == "" {
			return "", ErrMissingHash
		}
		return hit.Hash + filepath.Ext(filepath.Base(hit.Path)), nil
	default:
		return "", fmt.Errorf("unsupported return type %q", p.returnType)
	}
}
