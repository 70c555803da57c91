package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/d-chambers/prolix/internal/models"
)

const dictionaryBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// DictionaryAPI looks up word definitions on dictionaryapi.dev.
type DictionaryAPI struct {
	baseURL string
	client  *http.Client
}

func NewDictionaryAPI() *DictionaryAPI {
	return &DictionaryAPI{
		baseURL: dictionaryBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *DictionaryAPI) Define(ctx context.Context, word string) (models.Definition, error) {
	endpoint := d.baseURL + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no dictionary entry for %q", word)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary lookup for %q failed with status %d", word, resp.StatusCode)
	}

	var entries []models.DictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary response for %q", word)
	}

	def := models.Definition{}
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, sense := range meaning.Definitions {
				if sense.Definition == "" {
					continue
				}
				def[meaning.PartOfSpeech] = append(def[meaning.PartOfSpeech], sense.Definition)
			}
		}
	}
	return def, nil
}
