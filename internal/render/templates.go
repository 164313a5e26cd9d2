package render

import "ndmedia/internal/domain"

// layoutTemplate wraps every page: header, optional sidebar, footer.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en" class="no-js">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if and .Meta.Title (ne .Page "Home")}}{{.Meta.Title}} | {{end}}{{.Site.Title}}</title>
<meta name="description" content="{{.Site.Title}}: {{.Site.Subtitle}}">
<link rel="icon" href="data:,">
<link rel="stylesheet" href="/static/app.css">
</head>
<body class="page-{{.Page.Slug}}{{if .Sections}} has-sidenav{{end}}{{if .Shell.SidebarCollapsed}} sidenav-collapsed{{end}}" data-view-id="{{.ViewID}}" data-page="{{.Page.Slug}}">
<header id="site-header" class="site-header{{if .Shell.HeaderScrolled}} scrolled{{end}}">
  <div class="container header-inner">
    <a class="brand" href="/">{{.Site.Subtitle}}</a>
    <nav class="nav-desktop" aria-label="Main">
      {{- range .Nav}}
      <a href="{{.Path}}" class="nav-link{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>
      {{- end}}
    </nav>
    <button type="button" class="menu-toggle" data-shell="menu" aria-controls="mobile-menu" aria-expanded="{{.Shell.MenuOpen}}" aria-label="Toggle menu">
      <span class="icon-menu" aria-hidden="true">&#9776;</span><span class="icon-close" aria-hidden="true">&times;</span>
    </button>
  </div>
  <nav id="mobile-menu" class="nav-mobile{{if .Shell.MenuOpen}} open{{end}}" aria-label="Mobile">
    {{- range .Nav}}
    <a href="{{.Path}}" class="nav-link{{if .Active}} active{{end}}">{{.Label}}</a>
    {{- end}}
  </nav>
</header>
{{if .Sections}}
<aside id="sidenav" class="sidenav{{if .Shell.SidebarCollapsed}} collapsed{{end}}" aria-label="On this page">
  <button type="button" class="sidenav-toggle" data-shell="sidebar" aria-expanded="{{not .Shell.SidebarCollapsed}}" aria-label="Toggle section navigation">&#8249;</button>
  <ul>
    {{- range .Sections}}
    <li><a href="#{{.ID}}" data-section="{{.ID}}" class="sidenav-link{{if .Active}} active{{end}}">{{.Label}}</a></li>
    {{- end}}
  </ul>
</aside>
{{end}}
<main id="main">
{{template "content" .}}
</main>
<footer class="site-footer">
  <div class="container"><p>&copy; {{.Year}} {{.Site.Footer}}</p></div>
</footer>
<script src="/static/app.js" defer></script>
</body>
</html>
`

// quizTemplate is rendered with a dto.QuizResponse.
const quizTemplate = `{{if .IsComplete -}}
<div class="quiz-complete">
  <h3>Quiz Complete!</h3>
  <p class="quiz-result">{{.Result}}</p>
  <p class="muted">{{quizCompleteMessage}}</p>
  <button type="button" class="btn" data-quiz="restart">Restart Quiz</button>
</div>
{{- else -}}
<p class="muted quiz-progress">{{.Progress}}</p>
<h3 class="quiz-question">{{.Question}}</h3>
<div class="quiz-options">
  {{- range .Options}}
  <button type="button" class="quiz-option{{with .Outcome}} {{.}}{{end}}{{if .Selected}} selected{{end}}" data-option="{{.Index}}"{{if $.IsAnswered}} disabled{{end}}>{{.Text}}</button>
  {{- end}}
</div>
{{- if .IsAnswered}}
<div class="quiz-explanation">
  <p class="strong">Explanation:</p>
  <p>{{.Explanation}}</p>
  <button type="button" class="btn" data-quiz="advance">{{.AdvanceLabel}}</button>
</div>
{{- end}}
{{- end}}`

const pageHeadTemplate = `<section class="page-head container">
  <h1>{{.Meta.Title}}</h1>
  {{- with .Meta.Subtitle}}
  <p class="lead">{{.}}</p>
  {{- end}}
</section>`

const homeTemplate = `<section class="hero">
  <img class="hero-bg" src="{{.Site.HeroImage}}" alt="" data-placeholder="{{placeholder .Site.Title}}">
  <div class="hero-shade"></div>
  <div class="hero-text">
    <h1>{{.Site.Title}}</h1>
    <p>{{.Site.HeroTagline}}</p>
  </div>
  <a class="hero-scroll" href="#intro" aria-label="Scroll to introduction">&#8964;</a>
</section>
<section id="intro" class="intro">
  <div class="container narrow center reveal">
    <h2>{{.Content.Home.IntroTitle}}</h2>
    <div class="prose">{{markdown .Content.Home.Intro}}</div>
  </div>
</section>
<section class="timeline-section">
  <div class="container narrow">
    <h2 class="center">{{.Content.Home.TimelineTitle}}</h2>
    <ol class="timeline">
      {{- range .Content.Timeline}}
      <li class="timeline-item reveal">
        <span class="timeline-dot" aria-hidden="true"></span>
        <p class="timeline-year">{{.Year}}</p>
        <h3>{{.Title}}</h3>
        <p class="muted">{{.Description}}</p>
      </li>
      {{- end}}
    </ol>
  </div>
</section>`

const postersTemplate = pageHeadTemplate + `
<section id="gallery" class="container poster-grid">
  {{- range .Content.Posters}}
  <a class="poster" href="#poster-{{.ID}}">
    <img src="{{.ImageURL}}" alt="{{.Title}}" loading="lazy" data-placeholder="{{placeholder .Title}}">
    <span class="poster-caption">{{.Title}}</span>
  </a>
  {{- end}}
</section>
{{- range .Content.Posters}}
<div id="poster-{{.ID}}" class="lightbox" role="dialog" aria-label="{{.Title}}">
  <a class="lightbox-backdrop" href="#gallery" aria-label="Close"></a>
  <figure class="lightbox-body">
    <img src="{{.ImageURL}}" alt="{{.Title}}" data-placeholder="{{placeholder .Title}}">
    <figcaption>
      <h2>{{.Title}}</h2>
      <p>{{.Description}}</p>
    </figcaption>
  </figure>
  <a class="lightbox-close" href="#gallery" aria-label="Close">&times;</a>
</div>
{{- end}}`

const researchTemplate = pageHeadTemplate + `
<section class="container research-grid">
  <div class="research-topics">
    <h2>{{.Content.Research.TopicsTitle}}</h2>
    {{- range $i, $t := .Content.Research.Topics}}
    <details class="accordion"{{if eq $i 0}} open{{end}}>
      <summary>
        <span class="accordion-title">{{$t.Title}}</span>
        <span class="accordion-summary">{{$t.Summary}}</span>
      </summary>
      <div class="prose">{{markdown $t.Content}}</div>
    </details>
    {{- end}}
  </div>
  <figure class="chart-card">
    <h2>{{.Content.Research.ChartTitle}}</h2>
    <svg class="chart" viewBox="0 0 {{.Chart.Width}} {{.Chart.Height}}" role="img" aria-label="{{.Content.Research.ChartTitle}}">
      {{- range .Chart.Ticks}}
      <line class="chart-grid" x1="{{.X}}" x2="{{.X}}" y1="{{$.Chart.PlotTop}}" y2="{{$.Chart.PlotBase}}"></line>
      <text class="chart-tick" x="{{.X}}" y="{{$.Chart.PlotBase}}" dy="18" text-anchor="middle">{{.Label}}</text>
      {{- end}}
      {{- range .Chart.Bars}}
      <g class="chart-bar">
        <text class="chart-label" x="{{.X}}" y="{{.LabelY}}" dx="-10" dominant-baseline="middle" text-anchor="end">{{.Label}}</text>
        <rect x="{{.X}}" y="{{.Y}}" width="{{.Width}}" height="{{.Height}}" rx="3"><title>{{.Label}}: {{.ValueLabel}}%</title></rect>
        <text class="chart-value" x="{{.ValueX}}" y="{{.LabelY}}" dominant-baseline="middle">{{.ValueLabel}}</text>
      </g>
      {{- end}}
    </svg>
    <figcaption class="chart-legend"><span class="legend-swatch" aria-hidden="true"></span>{{.Chart.Series}}</figcaption>
  </figure>
</section>`

const guidelinesTemplate = pageHeadTemplate + `
<div class="container with-sidenav">
  <section id="overview" class="anchor">
    <h2>{{.SectionLabel "overview"}}</h2>
    <div class="prose">{{markdown .Content.Guidelines.Overview}}</div>
  </section>
  <section id="chapters" class="anchor">
    <h2>{{.SectionLabel "chapters"}}</h2>
    <div class="chapter-grid">
      {{- range .Content.Guidelines.Chapters}}
      <article class="chapter{{if .Wide}} wide{{end}}">
        <h3><span class="chapter-number">{{.Number}}</span> {{.Title}}</h3>
        {{- range .Subsections}}
        {{- with .Title}}
        <h4>{{.}}</h4>
        {{- end}}
        <ul>
          {{- range .Items}}
          <li>{{.}}</li>
          {{- end}}
        </ul>
        {{- end}}
      </article>
      {{- end}}
    </div>
    <div class="prose conclusion">{{markdown .Content.Guidelines.Conclusion}}</div>
  </section>
  {{- with .View.Quiz}}
  <section id="quiz" class="anchor">
    <h2>{{$.Content.Guidelines.QuizTitle}}</h2>
    <div id="quiz-box" class="quiz card" data-complete-message="{{quizCompleteMessage}}">{{template "quiz" .}}</div>
  </section>
  {{- end}}
</div>`

const contactTemplate = pageHeadTemplate + `
<div class="container with-sidenav">
  <section id="about" class="anchor">
    <h2>{{.Content.Contact.AboutTitle}}</h2>
    <div class="prose">{{markdown .Content.Contact.About}}</div>
  </section>
  <section id="mentors" class="anchor">
    <h2>{{.SectionLabel "mentors"}}</h2>
    <div class="people-grid">
      {{- range .Content.Contact.Mentors}}
      <div class="person card"><h3>{{.Name}}</h3><p class="muted">{{.Role}}</p></div>
      {{- end}}
    </div>
  </section>
  <section id="team" class="anchor">
    <h2>{{.SectionLabel "team"}}</h2>
    <div class="people-grid">
      {{- range .Content.Contact.Team}}
      <div class="person card"><h3>{{.Name}}</h3><p class="muted">{{.Role}}</p></div>
      {{- end}}
    </div>
  </section>
  <section id="workshops" class="anchor">
    <h2>{{.Content.Contact.WorkshopsTitle}}</h2>
    <p>{{.Content.Contact.Workshops}}</p>
    <p><a class="btn" href="mailto:{{.Content.Contact.Email}}">{{.Content.Contact.Email}}</a></p>
    {{- with .View.Carousel}}
    <div id="slideshow" class="slideshow">
      <h3>{{$.Content.WorkshopSlides.Title}}</h3>
      <p class="muted">{{$.Content.WorkshopSlides.Intro}}</p>
      <div class="slide-frame">
        <img id="slide-current" src="{{.Current}}" alt="Workshop slide {{inc .CurrentIndex}}" data-placeholder="Workshop slide">
        <button type="button" class="slide-nav prev" data-carousel="previous" aria-label="Previous slide">&#8249;</button>
        <button type="button" class="slide-nav next" data-carousel="next" aria-label="Next slide">&#8250;</button>
        <span id="slide-counter" class="slide-counter">{{.Counter}}</span>
      </div>
      <div class="slide-thumbs">
        {{- range $i, $s := .Slides}}
        <button type="button" class="thumb{{if eq $i $.View.Carousel.CurrentIndex}} active{{end}}" data-carousel="jump" data-index="{{$i}}" aria-label="Show slide {{inc $i}}">
          <img src="{{$s}}" alt="" loading="lazy">
        </button>
        {{- end}}
      </div>
    </div>
    {{- end}}
  </section>
</div>`

var pageTemplates = map[domain.Page]string{
	domain.PageHome:       homeTemplate,
	domain.PagePosters:    postersTemplate,
	domain.PageResearch:   researchTemplate,
	domain.PageGuidelines: guidelinesTemplate,
	domain.PageContact:    contactTemplate,
}
