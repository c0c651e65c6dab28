package relay

import (
	"html/template"
	"io"

	"github.com/samber/lo"
)

// playerPage embeds the stream locator only as the iframe src attribute;
// html/template escapes it for that context.
var playerPage = lo.Must(template.New("player").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Streaming</title>
<style>
  body {
    margin: 0;
    font-family: Arial, sans-serif;
    background-color: #222;
    color: #fff;
    display: flex;
    justify-content: center;
    align-items: center;
    height: 100vh;
    overflow: hidden;
  }
  .video-container {
    position: relative;
    width: 100%;
    max-width: 90vw;
    aspect-ratio: 16 / 9;
    max-height: 80vh;
    border: 5px solid #444;
    border-radius: 8px;
    box-shadow: 0 4px 8px rgba(0, 0, 0, 0.5);
    background-color: #000;
  }
  iframe {
    width: 100%;
    height: 100%;
    border: none;
    border-radius: 8px;
  }
  @media (max-width: 600px) {
    .video-container {
      max-width: 100vw;
      max-height: 60vh;
    }
  }
</style>
</head>
<body>
<div class="video-container">
  <iframe src="{{.StreamURL}}" sandbox="allow-scripts allow-same-origin allow-presentation" referrerpolicy="no-referrer" allow="fullscreen; picture-in-picture" allowfullscreen></iframe>
</div>
</body>
</html>
`))

type playerData struct {
	StreamURL string
}

func renderPlayer(w io.Writer, streamURL string) error {
	return playerPage.Execute(w, playerData{StreamURL: streamURL})
}
