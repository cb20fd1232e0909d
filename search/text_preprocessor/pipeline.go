package text_preprocessor

import (
	"strings"
	"sync"
)

// Config holds the configuration for text preprocessing.
type Config struct {
	Tokenizer                   TokenizerFunc
	Stopwords                   map[string]struct{}
	DoLowercasing               bool
	DoAmpersandNormalization    bool
	DoSpecialCharsNormalization bool
	DoWhitespaceStripping       bool
}

// NewConfig creates a new Config with default values. The defaults prepare
// German text for surface-form matching: the tokens keep their umlauts and
// are not stemmed, since the morphology generator covers the variant forms.
func NewConfig() *Config {
	return &Config{
		Tokenizer:                   wordTokenizer,
		Stopwords:                   GermanStopwords(),
		DoLowercasing:               true,
		DoAmpersandNormalization:    true,
		DoSpecialCharsNormalization: true,
		DoWhitespaceStripping:       true,
	}
}

// Preprocessor holds the preprocessing steps and configuration.
type Preprocessor struct {
	config *Config
	steps  []func(string) string
}

// NewPreprocessor creates a new Preprocessor with the given configuration.
func NewPreprocessor(config *Config) *Preprocessor {
	p := &Preprocessor{config: config}
	p.createPreprocessingSteps()
	return p
}

// createPreprocessingSteps creates the preprocessing steps based on the configuration.
func (p *Preprocessor) createPreprocessingSteps() {
	if p.config.DoLowercasing {
		p.steps = append(p.steps, Lowercasing)
	}
	if p.config.DoAmpersandNormalization {
		p.steps = append(p.steps, NormalizeAmpersand)
	}
	if p.config.DoSpecialCharsNormalization {
		p.steps = append(p.steps, NormalizeSpecialChars)
	}
	if p.config.DoWhitespaceStripping {
		p.steps = append(p.steps, StripWhitespaces)
	}
}

// Process processes a single text item through all preprocessing steps and
// tokenizes the result, dropping stopwords and empty tokens.
func (p *Preprocessor) Process(item string) []string {
	for _, step := range p.steps {
		item = step(item)
	}
	tokenizer := p.config.Tokenizer
	if tokenizer == nil {
		tokenizer = strings.Fields
	}
	tokens := tokenizer(item)
	if len(p.config.Stopwords) > 0 {
		tokens = RemoveStopwords(tokens, p.config.Stopwords)
	}
	return RemoveEmptyTokens(tokens)
}

// ProcessMany processes multiple text items concurrently.
func (p *Preprocessor) ProcessMany(items []string, nWorkers int) [][]string {
	if nWorkers < 1 {
		nWorkers = 1
	}

	var wg sync.WaitGroup
	out := make([][]string, len(items))
	ch := make(chan int, len(items))

	for i := range items {
		ch <- i
	}
	close(ch)

	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range ch {
				out[idx] = p.Process(items[idx])
			}
		}()
	}

	wg.Wait()
	return out
}
