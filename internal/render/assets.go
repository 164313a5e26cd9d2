package render

// Asset is a static file served from memory.
type Asset struct {
	Body        []byte
	ContentType string
}

func newAsset(body, contentType string) Asset {
	return Asset{Body: []byte(body), ContentType: contentType}
}

// Assets are the stylesheet and script every page links to, keyed by file name.
var Assets = map[string]Asset{
	"app.css": newAsset(cssContent, "text/css; charset=utf-8"),
	"app.js":  newAsset(jsContent, "application/javascript; charset=utf-8"),
}

const cssContent = `:root {
  --bg: #0d0d0d;
  --surface: #1a1a1a;
  --border: #2e2e2e;
  --gold: #d4af37;
  --gold-light: #f0d060;
  --text: #f5f5f5;
  --muted: #a3a3a3;
  --green: #22c55e;
  --red: #ef4444;
  --header-h: 80px;
  --sidenav-w: 220px;
}
* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; background: var(--bg); color: var(--text); font-family: "Inter", system-ui, sans-serif; line-height: 1.6; }
h1, h2, h3 { font-family: "Playfair Display", Georgia, serif; line-height: 1.2; }
a { color: var(--gold); }
img { max-width: 100%; display: block; }
.container { max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }
.narrow { max-width: 56rem; }
.center { text-align: center; }
.muted { color: var(--muted); }
.strong { font-weight: 700; }
.card { background: var(--surface); border: 1px solid var(--border); border-radius: 8px; padding: 1.5rem; }
.btn { display: inline-block; background: var(--gold); color: #000; font-weight: 700; border: 0; border-radius: 6px; padding: .6rem 1.5rem; cursor: pointer; text-decoration: none; }
.btn:hover { background: var(--gold-light); }

/* header */
.site-header { position: fixed; top: 0; left: 0; right: 0; z-index: 50; height: var(--header-h); transition: background .3s; }
.site-header.scrolled { background: rgba(0, 0, 0, .8); backdrop-filter: blur(4px); }
.header-inner { display: flex; align-items: center; justify-content: space-between; height: 100%; }
.brand { color: var(--text); text-decoration: none; font-family: "Playfair Display", Georgia, serif; }
.nav-desktop { display: flex; gap: 2.5rem; }
.nav-link { color: var(--text); text-decoration: none; text-transform: uppercase; letter-spacing: .1em; font-size: .85rem; padding: .25rem 0; border-bottom: 2px solid transparent; }
.nav-link:hover, .nav-link.active { color: var(--gold); }
.nav-link.active { border-bottom-color: var(--gold); }
.menu-toggle { display: none; background: none; border: 0; color: var(--text); font-size: 1.6rem; cursor: pointer; }
.menu-toggle .icon-close, .menu-toggle[aria-expanded="true"] .icon-menu { display: none; }
.menu-toggle[aria-expanded="true"] .icon-close { display: inline; }
.nav-mobile { display: none; flex-direction: column; background: rgba(0, 0, 0, .95); padding: 1rem 1.5rem; gap: 1rem; }
@media (max-width: 768px) {
  .nav-desktop { display: none; }
  .menu-toggle { display: block; }
  .nav-mobile.open { display: flex; }
}

/* sidebar */
.sidenav { position: fixed; top: calc(var(--header-h) + 2rem); left: 1rem; width: var(--sidenav-w); z-index: 40; transition: transform .3s; }
.sidenav ul { list-style: none; margin: 0; padding: 0 0 0 1rem; border-left: 1px solid var(--border); }
.sidenav-link { display: block; color: var(--muted); text-decoration: none; padding: .35rem 0; }
.sidenav-link.active { color: var(--gold); font-weight: 700; }
.sidenav-toggle { background: var(--surface); color: var(--text); border: 1px solid var(--border); border-radius: 50%; width: 2rem; height: 2rem; cursor: pointer; margin-bottom: .75rem; }
.sidenav.collapsed ul { display: none; }
.sidenav.collapsed .sidenav-toggle { transform: rotate(180deg); }
.has-sidenav .with-sidenav { padding-left: calc(var(--sidenav-w) + 2rem); }
.has-sidenav.sidenav-collapsed .with-sidenav { padding-left: 4rem; }
@media (max-width: 1024px) {
  .sidenav { display: none; }
  .has-sidenav .with-sidenav, .has-sidenav.sidenav-collapsed .with-sidenav { padding-left: 1.5rem; }
}
.anchor { scroll-margin-top: 100px; padding: 3rem 0; }

/* page head */
main { min-height: 80vh; }
.page-head { padding-top: calc(var(--header-h) + 3rem); padding-bottom: 2rem; text-align: center; }
.page-head h1 { color: var(--gold); font-size: 3rem; margin: 0 0 1rem; }
.lead { color: var(--muted); font-size: 1.15rem; max-width: 48rem; margin: 0 auto; }

/* home */
.hero { position: relative; height: 100vh; display: flex; align-items: center; justify-content: center; text-align: center; overflow: hidden; }
.hero-bg { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; }
.hero-shade { position: absolute; inset: 0; background: rgba(0, 0, 0, .7); }
.hero-text { position: relative; z-index: 1; padding: 1rem; }
.hero-text h1 { color: var(--gold); font-size: clamp(2.5rem, 6vw, 4.5rem); margin: 0; }
.hero-text p { font-size: 1.2rem; max-width: 40rem; margin: 1rem auto 0; }
.hero-scroll { position: absolute; bottom: 2.5rem; left: 50%; transform: translateX(-50%); color: var(--text); font-size: 2rem; text-decoration: none; animation: bounce 2s infinite; }
@keyframes bounce { 0%, 100% { transform: translate(-50%, 0); } 50% { transform: translate(-50%, -10px); } }
.intro, .timeline-section { padding: 5rem 0; }
.timeline { list-style: none; padding: 0; margin: 3rem 0 0; position: relative; }
.timeline-item { position: relative; padding: 0 0 3.5rem 2.5rem; border-left: 1px solid #4b5563; }
.timeline-item:last-child { border-left-color: transparent; }
.timeline-dot { position: absolute; left: -8px; top: .35rem; width: 16px; height: 16px; border-radius: 50%; background: var(--gold); box-shadow: 0 0 0 4px #374151; }
.timeline-year { color: var(--gold); font-family: "Playfair Display", Georgia, serif; font-size: 1.25rem; margin: 0; }
.reveal { opacity: 0; transform: translateY(2.5rem); transition: opacity 1s, transform 1s; }
.reveal.visible { opacity: 1; transform: none; }
.no-js .reveal { opacity: 1; transform: none; }

/* posters */
.poster-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1.5rem; padding-bottom: 4rem; }
.poster { position: relative; display: block; aspect-ratio: 2 / 3; overflow: hidden; border-radius: 8px; background: var(--surface); }
.poster img { width: 100%; height: 100%; object-fit: cover; transition: transform .4s; }
.poster:hover img { transform: scale(1.05); }
.poster-caption { position: absolute; left: 0; right: 0; bottom: 0; padding: 1rem; background: linear-gradient(transparent, rgba(0, 0, 0, .85)); color: var(--text); }
.lightbox { display: none; position: fixed; inset: 0; z-index: 60; align-items: center; justify-content: center; }
.lightbox:target { display: flex; }
.lightbox-backdrop { position: absolute; inset: 0; background: rgba(0, 0, 0, .9); }
.lightbox-body { position: relative; max-width: 900px; max-height: 90vh; display: flex; gap: 2rem; margin: 0; padding: 1.5rem; background: var(--surface); border-radius: 8px; }
.lightbox-body img { max-height: 80vh; width: auto; }
.lightbox-close { position: absolute; top: 1rem; right: 1.5rem; color: var(--text); font-size: 2.5rem; text-decoration: none; }
.img-placeholder { display: flex; align-items: center; justify-content: center; width: 100%; height: 100%; min-height: 8rem; background: #262626; color: var(--muted); text-align: center; padding: 1rem; font-size: .9rem; }

/* research */
.research-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 3rem; padding-bottom: 4rem; align-items: start; }
@media (max-width: 900px) { .research-grid { grid-template-columns: 1fr; } }
.accordion { border-bottom: 1px solid var(--border); padding: 1rem 0; }
.accordion summary { cursor: pointer; list-style: none; }
.accordion summary::-webkit-details-marker { display: none; }
.accordion-title { display: block; font-weight: 700; font-size: 1.1rem; }
.accordion[open] .accordion-title { color: var(--gold); }
.accordion-summary { display: block; color: var(--muted); font-size: .95rem; }
.chart-card { margin: 0; background: var(--surface); border: 1px solid var(--border); border-radius: 8px; padding: 1.5rem; }
.chart { width: 100%; height: auto; }
.chart-grid { stroke: #333; stroke-dasharray: 3 3; }
.chart-tick, .chart-value, .chart-label { fill: var(--muted); font-size: 12px; }
.chart-label { fill: var(--text); }
.chart-bar rect { fill: var(--gold); }
.chart-bar:hover rect { fill: var(--gold-light); }
.chart-legend { color: var(--muted); font-size: .9rem; display: flex; align-items: center; gap: .5rem; justify-content: center; }
.legend-swatch { width: 12px; height: 12px; background: var(--gold); display: inline-block; }

/* guidelines */
.chapter-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1.5rem; }
@media (max-width: 768px) { .chapter-grid { grid-template-columns: 1fr; } }
.chapter { background: var(--surface); border: 1px solid var(--border); border-radius: 8px; padding: 1.5rem; }
.chapter.wide { grid-column: span 2; }
@media (max-width: 768px) { .chapter.wide { grid-column: span 1; } }
.chapter-number { color: var(--gold); margin-right: .5rem; }
.chapter h4 { color: var(--gold); margin: 1rem 0 .25rem; }
.chapter ul { padding-left: 1.2rem; color: var(--muted); }
.conclusion { margin-top: 2rem; font-style: italic; }
.quiz-progress { margin-bottom: .5rem; }
.quiz-options { display: grid; gap: 1rem; }
.quiz-option { text-align: left; background: transparent; color: var(--text); border: 2px solid #4b5563; border-radius: 6px; padding: 1rem; font: inherit; cursor: pointer; transition: all .2s; }
.quiz-option:hover:not([disabled]) { border-color: var(--gold); background: #1f2937; }
.quiz-option[disabled] { cursor: default; }
.quiz-option.correct { border-color: var(--green); background: rgba(34, 197, 94, .2); }
.quiz-option.wrong { border-color: var(--red); background: rgba(239, 68, 68, .2); }
.quiz-explanation { margin-top: 1.5rem; padding: 1rem; background: #1f2937; border-radius: 6px; }
.quiz-complete { text-align: center; }
.quiz-result { color: var(--gold); font-size: 2.5rem; font-weight: 700; }

/* contact */
.people-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1.5rem; }
.person h3 { margin: 0 0 .25rem; font-size: 1.1rem; }
.slideshow { margin-top: 3rem; }
.slide-frame { position: relative; aspect-ratio: 16 / 9; background: var(--surface); border-radius: 8px; overflow: hidden; }
.slide-frame img { width: 100%; height: 100%; object-fit: cover; }
.slide-nav { position: absolute; top: 50%; transform: translateY(-50%); background: rgba(0, 0, 0, .5); color: var(--text); border: 0; border-radius: 50%; width: 3rem; height: 3rem; font-size: 1.8rem; cursor: pointer; }
.slide-nav.prev { left: 1rem; }
.slide-nav.next { right: 1rem; }
.slide-counter { position: absolute; bottom: 1rem; right: 1rem; background: rgba(0, 0, 0, .6); padding: .2rem .7rem; border-radius: 999px; font-size: .9rem; }
.slide-thumbs { display: flex; gap: .5rem; margin-top: 1rem; overflow-x: auto; }
.thumb { flex: 0 0 auto; width: 96px; border: 2px solid transparent; border-radius: 4px; padding: 0; background: none; cursor: pointer; opacity: .6; }
.thumb.active { border-color: var(--gold); opacity: 1; }

/* footer */
.site-footer { border-top: 1px solid var(--border); padding: 2rem 0; text-align: center; color: var(--muted); font-size: .9rem; }
`

const jsContent = `(function () {
  'use strict';

  document.documentElement.classList.remove('no-js');
  var body = document.body;
  var viewId = body.getAttribute('data-view-id');
  var api = '/api/views/' + encodeURIComponent(viewId);

  function post(path, payload) {
    return fetch(api + path, {
      method: 'POST',
      headers: { 'Content-Type': 'application/json', 'Accept': 'application/json' },
      body: payload === undefined ? '{}' : JSON.stringify(payload),
      keepalive: true
    }).then(function (res) {
      return res.json().then(function (data) {
        if (!res.ok) { throw data; }
        return data;
      });
    });
  }

  function el(tag, attrs, text) {
    var node = document.createElement(tag);
    Object.keys(attrs || {}).forEach(function (k) { node.setAttribute(k, attrs[k]); });
    if (text !== undefined) { node.textContent = text; }
    return node;
  }

  // ---- image placeholders ----
  function swapPlaceholder(img) {
    var label = img.getAttribute('data-placeholder');
    if (label === null || img.getAttribute('data-failed')) { return; }
    img.setAttribute('data-failed', '1');
    var box = el('div', { 'class': 'img-placeholder', 'role': 'img', 'aria-label': label }, label);
    img.replaceWith(box);
  }
  document.querySelectorAll('img[data-placeholder]').forEach(function (img) {
    if (img.complete && img.naturalWidth === 0 && img.src) { swapPlaceholder(img); }
    img.addEventListener('error', function () { swapPlaceholder(img); });
  });

  // ---- reveal on scroll ----
  if ('IntersectionObserver' in window) {
    var revealer = new IntersectionObserver(function (entries) {
      entries.forEach(function (entry) {
        if (entry.isIntersecting) {
          entry.target.classList.add('visible');
          revealer.unobserve(entry.target);
        }
      });
    }, { threshold: 0.1 });
    document.querySelectorAll('.reveal').forEach(function (n) { revealer.observe(n); });
  } else {
    document.querySelectorAll('.reveal').forEach(function (n) { n.classList.add('visible'); });
  }

  // ---- shell ----
  var header = document.getElementById('site-header');
  var sidenav = document.getElementById('sidenav');

  function applyShell(shell) {
    var menu = document.getElementById('mobile-menu');
    var toggle = document.querySelector('[data-shell="menu"]');
    if (menu) { menu.classList.toggle('open', shell.menu_open); }
    if (toggle) { toggle.setAttribute('aria-expanded', String(shell.menu_open)); }
    if (sidenav) {
      sidenav.classList.toggle('collapsed', shell.sidebar_collapsed);
      body.classList.toggle('sidenav-collapsed', shell.sidebar_collapsed);
      var st = sidenav.querySelector('[data-shell="sidebar"]');
      if (st) { st.setAttribute('aria-expanded', String(!shell.sidebar_collapsed)); }
    }
  }
  document.querySelectorAll('[data-shell]').forEach(function (btn) {
    btn.addEventListener('click', function () {
      post('/shell/' + btn.getAttribute('data-shell')).then(applyShell).catch(function () {});
    });
  });

  // ---- section tracker ----
  var sectionLinks = sidenav ? Array.prototype.slice.call(sidenav.querySelectorAll('[data-section]')) : [];

  function markActive(id) {
    sectionLinks.forEach(function (a) {
      a.classList.toggle('active', a.getAttribute('data-section') === id);
    });
  }

  function anchors() {
    var out = [];
    sectionLinks.forEach(function (a) {
      var target = document.getElementById(a.getAttribute('data-section'));
      if (!target) { return; }
      var r = target.getBoundingClientRect();
      out.push({ id: target.id, top: r.top, bottom: r.bottom });
    });
    return out;
  }

  var pending = false;
  function onScroll() {
    if (pending) { return; }
    pending = true;
    window.requestAnimationFrame(function () {
      pending = false;
      var y = window.scrollY;
      header.classList.toggle('scrolled', y > 10);
      post('/tracker/scroll', { scroll_y: y, viewport_height: window.innerHeight, anchors: anchors() })
        .then(function (res) {
          header.classList.toggle('scrolled', res.header_scrolled);
          markActive(res.active_section_id);
        })
        .catch(function (err) {
          if (err && err.code === 'VIEW_NOT_FOUND') { unregister(); }
        });
    });
  }

  sectionLinks.forEach(function (a) {
    a.addEventListener('click', function (ev) {
      ev.preventDefault();
      var id = a.getAttribute('data-section');
      var target = document.getElementById(id);
      if (!target) { return; }
      markActive(id);
      post('/tracker/select', { section_id: id, offset_top: target.offsetTop })
        .then(function (res) {
          window.scrollTo({ top: res.target.top, behavior: res.target.behavior });
        })
        .catch(function () {
          window.scrollTo({ top: Math.max(0, target.offsetTop - 100), behavior: 'smooth' });
        });
    });
  });

  // ---- quiz ----
  var quizBox = document.getElementById('quiz-box');

  function renderQuiz(q) {
    quizBox.textContent = '';
    if (q.is_complete) {
      var done = el('div', { 'class': 'quiz-complete' });
      done.appendChild(el('h3', {}, 'Quiz Complete!'));
      done.appendChild(el('p', { 'class': 'quiz-result' }, q.result));
      done.appendChild(el('p', { 'class': 'muted' }, quizBox.getAttribute('data-complete-message')));
      done.appendChild(el('button', { 'type': 'button', 'class': 'btn', 'data-quiz': 'restart' }, 'Restart Quiz'));
      quizBox.appendChild(done);
      return;
    }
    quizBox.appendChild(el('p', { 'class': 'muted quiz-progress' }, q.progress));
    quizBox.appendChild(el('h3', { 'class': 'quiz-question' }, q.question));
    var opts = el('div', { 'class': 'quiz-options' });
    q.options.forEach(function (o) {
      var cls = 'quiz-option' + (o.outcome ? ' ' + o.outcome : '') + (o.selected ? ' selected' : '');
      var b = el('button', { 'type': 'button', 'class': cls, 'data-option': String(o.index) }, o.text);
      if (q.is_answered) { b.disabled = true; }
      opts.appendChild(b);
    });
    quizBox.appendChild(opts);
    if (q.is_answered) {
      var ex = el('div', { 'class': 'quiz-explanation' });
      ex.appendChild(el('p', { 'class': 'strong' }, 'Explanation:'));
      ex.appendChild(el('p', {}, q.explanation));
      ex.appendChild(el('button', { 'type': 'button', 'class': 'btn', 'data-quiz': 'advance' }, q.advance_label));
      quizBox.appendChild(ex);
    }
  }

  if (quizBox) {
    quizBox.addEventListener('click', function (ev) {
      var opt = ev.target.closest('[data-option]');
      if (opt && !opt.disabled) {
        post('/quiz/select', { option: Number(opt.getAttribute('data-option')) })
          .then(function (res) { renderQuiz(res.quiz); }).catch(function () {});
        return;
      }
      var action = ev.target.closest('[data-quiz]');
      if (action) {
        post('/quiz/' + action.getAttribute('data-quiz')).then(renderQuiz).catch(function () {});
      }
    });
  }

  // ---- slideshow ----
  var slideshow = document.getElementById('slideshow');

  function renderCarousel(c) {
    var img = document.getElementById('slide-current');
    if (img) {
      img.src = c.current;
      img.alt = 'Workshop slide ' + (c.current_index + 1);
    }
    document.getElementById('slide-counter').textContent = c.counter;
    slideshow.querySelectorAll('.thumb').forEach(function (t) {
      t.classList.toggle('active', Number(t.getAttribute('data-index')) === c.current_index);
    });
  }

  if (slideshow) {
    slideshow.addEventListener('click', function (ev) {
      var btn = ev.target.closest('[data-carousel]');
      if (!btn) { return; }
      var action = btn.getAttribute('data-carousel');
      var payload = action === 'jump' ? { index: Number(btn.getAttribute('data-index')) } : undefined;
      post('/carousel/' + action, payload).then(renderCarousel).catch(function () {});
    });
  }

  // ---- lifecycle: register on mount, unregister on exit ----
  var registered = false;
  function register() {
    if (registered || !viewId) { return; }
    registered = true;
    window.addEventListener('scroll', onScroll, { passive: true });
    onScroll();
  }
  function unregister() {
    if (!registered) { return; }
    registered = false;
    window.removeEventListener('scroll', onScroll);
  }

  window.addEventListener('pagehide', function () {
    unregister();
    if (viewId && navigator.sendBeacon) { navigator.sendBeacon(api + '/exit'); }
  });
  window.addEventListener('pageshow', function (ev) {
    if (ev.persisted) { window.location.reload(); }
  });

  register();
})();
`
