package page

// documentTemplate is the html/template shell every page is rendered into.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  {{- if .Viewport}}
  <meta name="viewport" content="{{.Viewport}}">
  {{- end}}
  {{- range .Meta}}
  <meta name="{{.Name}}" content="{{.Content}}">
  {{- end}}
  <title>{{.Title}}</title>
  {{- range .Stylesheets}}
  <link rel="stylesheet" href="{{.}}">
  {{- end}}
</head>
<body{{if .ViewID}} data-view="{{.ViewID}}" data-events="{{.EventsPath}}"{{end}}>
{{.Body}}
<script>{{.Script}}</script>
</body>
</html>`

// clientScript opens context menus and forwards click events to the server.
const clientScript = `(function () {
  var body = document.body;
  var socket = null;
  if (body.dataset.view) {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    socket = new WebSocket(proto + location.host + body.dataset.events + "?view=" + encodeURIComponent(body.dataset.view));
  }
  function send(target) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify({type: "click", target: target}));
    }
  }
  function closeMenus() {
    document.querySelectorAll(".context-menu").forEach(function (m) { m.hidden = true; });
  }
  document.querySelectorAll(".context-menu").forEach(function (menu) {
    var target = document.getElementById(menu.dataset.target);
    if (!target) { return; }
    target.addEventListener(menu.dataset.openOn, function (ev) {
      ev.preventDefault();
      ev.stopPropagation();
      var r = target.getBoundingClientRect();
      menu.style.position = "absolute";
      menu.style.top = (r.bottom + window.scrollY) + "px";
      menu.style.left = (r.left + window.scrollX) + "px";
      var wasHidden = menu.hidden;
      closeMenus();
      menu.hidden = !wasHidden;
    });
  });
  document.addEventListener("click", function (ev) {
    var el = ev.target.closest("[data-event=click]");
    if (el) { send(el.id); }
    closeMenus();
  });
})();`
