package mailer

import (
	"bytes"
	"html/template"
	"strings"
)

type FeaturedCard struct {
	Title    string
	Excerpt  string
	ImageURL string
	Link     string
}

type NewsletterParams struct {
	Subject        string
	Paragraphs     []string
	Featured       *FeaturedCard
	UnsubscribeURL string
	SiteURL        string
	Year           int
}

const newsletterHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>{{.Subject}}</title>
  <style>
    body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f4f4f4; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 20px auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0, 0, 0, 0.1); }
    .header { background: #009688; color: white; padding: 30px; text-align: center; }
    .header h1 { margin: 0; font-size: 28px; font-weight: 500; }
    .content { padding: 30px; font-size: 16px; background: #fff; }
    .content p { margin: 0 0 16px 0; color: #444; }
    .featured { border: 1px solid #eee; border-radius: 8px; margin: 16px 0; overflow: hidden; }
    .featured img { width: 100%; display: block; }
    .featured .featured-body { padding: 16px; }
    .featured h2 { margin: 0 0 8px 0; font-size: 20px; color: #009688; }
    .btn { display: inline-block; padding: 12px 24px; margin: 16px 0; background: #009688; color: white !important; text-decoration: none; border-radius: 6px; font-weight: bold; text-align: center; }
    .footer { text-align: center; padding: 20px; font-size: 12px; color: #999; background: #f9f9f9; border-top: 1px solid #eee; }
    .footer a { color: #009688; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>{{.Subject}}</h1>
    </div>
    <div class="content">
{{- range .Paragraphs}}
      <p>{{.}}</p>
{{- end}}
{{- with .Featured}}
      <div class="featured">
{{- if .ImageURL}}
        <img src="{{.ImageURL}}" alt="{{.Title}}" />
{{- end}}
        <div class="featured-body">
          <h2>{{.Title}}</h2>
          <p>{{.Excerpt}}</p>
          <a class="btn" href="{{.Link}}">Leer artículo</a>
        </div>
      </div>
{{- end}}
    </div>
    <div class="footer">
      <p>
{{- if .UnsubscribeURL}}
        <a href="{{.UnsubscribeURL}}">Darse de baja</a> |
{{- end}}
        <a href="{{.SiteURL}}">Visitar sitio web</a>
      </p>
      <p>&copy; {{.Year}} CBA Blog. Todos los derechos reservados.</p>
    </div>
  </div>
</body>
</html>
`

var newsletterTemplate = template.Must(template.New("newsletter").Parse(newsletterHTML))

func RenderNewsletter(params NewsletterParams) (string, error) {
	var buf bytes.Buffer
	if err := newsletterTemplate.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SplitParagraphs turns newline-delimited plain text into paragraphs,
// dropping blank lines.
func SplitParagraphs(content string) []string {
	var paragraphs []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}
	return paragraphs
}
