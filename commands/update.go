package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/pivotal-cf/passgen/apply"
)

const latestReleaseURL = "https://api.github.com/repos/pivotal-cf/passgen/releases/latest"

func runUpdate() error {
	type githubAsset struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	}

	type githubRelease struct {
		TagName string        `json:"tag_name"`
		Assets  []githubAsset `json:"assets"`
	}

	apiResponse, err := http.Get(latestReleaseURL)
	if err != nil {
		return err
	}
	defer apiResponse.Body.Close()

	if apiResponse.StatusCode != http.StatusOK {
		return errors.New("error fetching latest release: " + apiResponse.Status)
	}

	var release githubRelease
	if err := json.NewDecoder(apiResponse.Body).Decode(&release); err != nil {
		return err
	}

	if release.TagName == version {
		fmt.Println("Already up to date.")
		return nil
	}

	assetName := fmt.Sprintf("passgen_%s_%s", runtime.GOOS, runtime.GOARCH)

	var downloadURL string
	for _, asset := range release.Assets {
		if asset.Name == assetName {
			downloadURL = asset.BrowserDownloadURL
			break
		}
	}
	if downloadURL == "" {
		return errors.New("unable to update passgen for this OS")
	}

	fmt.Println("Downloading new passgen...")
	downloadResponse, err := http.Get(downloadURL)
	if err != nil {
		return err
	}
	defer downloadResponse.Body.Close()

	if downloadResponse.StatusCode != http.StatusOK {
		return errors.New("error downloading latest release: " + downloadResponse.Status)
	}

	if err := apply.Apply(downloadResponse.Body); err != nil {
		return err
	}

	fmt.Printf("Upgraded from %s to %s.\n", version, release.TagName)
	return nil
}
