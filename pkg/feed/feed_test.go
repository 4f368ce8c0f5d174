package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015"
      xmlns:media="http://search.yahoo.com/mrss/"
      xmlns="http://www.w3.org/2005/Atom">
	<title>First We Feast</title>
	<entry>
		<id>yt:video:abc123</id>
		<yt:videoId>abc123</yt:videoId>
		<title>Hot Ones: Guest A | Season X</title>
		<link rel="alternate" href="https://www.youtube.com/watch?v=abc123"/>
		<published>2024-05-01T16:00:00+00:00</published>
		<media:group>
			<media:description>Guest A eats the wings of death.</media:description>
			<media:community>
				<media:statistics views="123456"/>
			</media:community>
		</media:group>
	</entry>
	<entry>
		<id>yt:video:def456</id>
		<yt:videoId>def456</yt:videoId>
		<title>Guest B Eats Spicy Wings</title>
		<link rel="alternate" href="https://www.youtube.com/watch?v=def456"/>
		<published>2024-04-24T16:00:00+00:00</published>
	</entry>
</feed>`

func TestFetchParsesChannelFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(channelFeedXML))
	}))
	defer server.Close()

	client := NewClient(nil)
	entries, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Hot Ones: Guest A | Season X", first.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", first.URL)
	assert.Equal(t, "abc123", first.VideoID)
	assert.Equal(t, "2024-05-01", first.PublishedDate)
	assert.Equal(t, "Guest A eats the wings of death.", first.Description)
	assert.Equal(t, int64(123456), first.ViewCount)

	second := entries[1]
	assert.Equal(t, "def456", second.VideoID)
	assert.Zero(t, second.ViewCount)
}

func TestFetchPreservesFeedOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(channelFeedXML))
	}))
	defer server.Close()

	client := NewClient(nil)
	entries, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	// Newest first, as served. BuildIndex relies on this ordering.
	assert.Equal(t, "abc123", entries[0].VideoID)
	assert.Equal(t, "def456", entries[1].VideoID)
}

func TestFetchErrorOnBadEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	client := NewClient(nil)
	_, err := client.Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}
