package site

// pageTemplate is the Go html/template for each documentation page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/assets/highlight.css">
</head>
<body>
  <main class="content">
    {{if .Breadcrumb}}<nav class="breadcrumb">{{range $i, $c := .Breadcrumb}}{{if $i}} › {{end}}<span>{{$c}}</span>{{end}}</nav>{{end}}
    <article class="prose">
      {{.Content}}
    </article>
  </main>
  <div class="toasts" id="toasts" aria-live="polite"></div>
  <script src="/assets/copy.js"></script>
</body>
</html>`

// copyCSS styles the copy buttons and notices. It is appended to the
// highlight stylesheet.
const copyCSS = `
.code-block { position: relative; }
.code-block .copy-btn {
  position: absolute;
  top: 8px;
  right: 8px;
  display: none;
  border: 1px solid #dee2e6;
  border-radius: 4px;
  background: #f8f9fa;
  cursor: pointer;
  padding: 4px 8px;
  font-size: 0.75rem;
}
.code-block:hover .copy-btn { display: block; }
.toasts { position: fixed; bottom: 16px; right: 16px; }
.toast { margin-top: 8px; padding: 8px 12px; border-radius: 4px; color: #fff; }
.toast.success { background: #2f9e44; }
.toast.error { background: #e03131; }
`

// copyJS binds every .copy-btn on the page through one delegated
// listener. The listener is added when the page is shown and removed when
// it is hidden, so a restored page never holds two bindings.
const copyJS = `(function() {
  "use strict";

  function toast(kind, message) {
    var box = document.getElementById("toasts");
    if (!box) return;
    var el = document.createElement("div");
    el.className = "toast " + kind;
    el.textContent = message;
    box.appendChild(el);
    setTimeout(function() { el.remove(); }, 2000);
  }

  function onClick(e) {
    var btn = e.target.closest(".copy-btn");
    if (!btn) return;
    var text = btn.getAttribute("data-clipboard-text") || "";
    if (!navigator.clipboard) {
      toast("error", "Failed to copy");
      return;
    }
    navigator.clipboard.writeText(text).then(function() {
      toast("success", "Code copied to clipboard!");
    }, function() {
      toast("error", "Failed to copy");
    });
  }

  var bound = false;
  function bind() {
    if (bound) return;
    document.addEventListener("click", onClick);
    bound = true;
  }
  function unbind() {
    document.removeEventListener("click", onClick);
    bound = false;
  }

  window.addEventListener("pageshow", bind);
  window.addEventListener("pagehide", unbind);
  bind();
})();
`
