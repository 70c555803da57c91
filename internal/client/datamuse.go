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

const datamuseBaseURL = "https://api.datamuse.com"

// DatamuseAPI asks the Datamuse suggestion endpoint for the closest
// spelling of a candidate word.
type DatamuseAPI struct {
	baseURL string
	client  *http.Client
}

func NewDatamuseAPI() *DatamuseAPI {
	return &DatamuseAPI{
		baseURL: datamuseBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Suggest returns the best spelling suggestion for the word, or the word
// unchanged when Datamuse has nothing better.
func (d *DatamuseAPI) Suggest(ctx context.Context, word string) (string, error) {
	endpoint := d.baseURL + "/sug?max=1&s=" + url.QueryEscape(word)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spelling lookup for %q failed with status %d", word, resp.StatusCode)
	}

	var suggestions []models.SpellSuggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		return "", fmt.Errorf("failed to decode suggestions for %q", word)
	}
	if len(suggestions) == 0 || suggestions[0].Word == "" {
		return word, nil
	}
	return suggestions[0].Word, nil
}
