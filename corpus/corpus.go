package corpus

import (
	"bufio"
	"os"
	"strings"

	"github.com/JaskiratSingh23/cstag/util"
)

// Sentence is one tagged training or evaluation sentence.
type Sentence struct {
	Words []string
	Tags  []string
}

// Load reads a tagged corpus: one sentence per line, tokens of the form
// word/TAG. The tag follows the last slash so words may themselves contain
// slashes. Tokens without a tag and punctuation-only words are skipped.
func Load(path string) ([]Sentence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data []Sentence
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var words, tags []string
		for _, token := range strings.Fields(line) {
			idx := strings.LastIndex(token, "/")
			if idx <= 0 || idx == len(token)-1 {
				continue
			}
			word, tag := token[:idx], token[idx+1:]
			if util.IsPunctuation(word) {
				continue
			}
			words = append(words, word)
			tags = append(tags, tag)
		}
		if len(words) > 0 {
			data = append(data, Sentence{Words: words, Tags: tags})
		}
	}
	return data, scanner.Err()
}

// TagSet returns the distinct tags of the corpus in first-seen order.
func TagSet(sents []Sentence) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, sent := range sents {
		for _, tag := range sent.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
