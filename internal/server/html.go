package server

// indexHTML is the embedded front end: a single form that posts to
// /api/calcular and a city autocomplete backed by /api/cidades.
const indexHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Mapa Astral Online</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif;
       background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
       min-height: 100vh; padding: 20px; }
.container { max-width: 700px; margin: 0 auto; background: white;
             border-radius: 12px; padding: 40px; }
h1 { text-align: center; color: #333; margin-bottom: 30px; }
fieldset { border: 1px solid #ddd; border-radius: 8px; padding: 15px;
           margin-bottom: 20px; }
legend { padding: 0 10px; color: #667eea; font-weight: 600; }
.row { display: grid; grid-template-columns: 1fr 1fr 1fr; gap: 10px; }
input { width: 100%; padding: 10px; margin: 8px 0; border: 1px solid #ddd;
        border-radius: 6px; }
button { width: 100%; padding: 12px; background: #667eea; color: white;
         border: none; border-radius: 6px; font-weight: 600; cursor: pointer; }
#resultado { margin-top: 30px; padding: 20px; background: #f0f9ff;
             border-radius: 8px; display: none; max-height: 500px; overflow-y: auto; }
#resultado pre { font-family: monospace; font-size: 11px; white-space: pre-wrap; }
#cidades { border: 1px solid #ddd; display: none; background: white;
           position: absolute; z-index: 10; width: 90%; max-height: 150px; overflow-y: auto; }
.cidade-item { padding: 8px; cursor: pointer; border-bottom: 1px solid #eee; }
</style>
</head>
<body>
<div class="container">
<h1>&#127769; Mapa Astral Online</h1>
<form id="mapForm">
<fieldset><legend>Identifica&ccedil;&atilde;o</legend>
<input type="text" id="nome" placeholder="Nome completo" value="Mapa do Momento" required>
<div style="position: relative;">
<input type="text" id="cidade" placeholder="Cidade" value="Bras&iacute;lia" required>
<div id="cidades"></div>
</div>
<input type="text" id="estado" placeholder="Estado/UF" value="DF" required>
</fieldset>
<fieldset><legend>Data e Hora</legend>
<div class="row">
<input type="number" id="dia" min="1" max="31" required>
<input type="number" id="mes" min="1" max="12" required>
<input type="number" id="ano" min="1900" max="2100" required>
</div>
<div class="row">
<input type="number" id="hora" min="0" max="23" required>
<input type="number" id="minuto" min="0" max="59" required>
<input type="number" id="segundo" min="0" max="59" required>
</div>
</fieldset>
<fieldset><legend>Localiza&ccedil;&atilde;o</legend>
<input type="number" id="latitude" step="0.01" value="-15.77" required>
<input type="number" id="longitude" step="0.01" value="-47.92" required>
<input type="number" id="timezone" step="0.5" value="-3" required>
</fieldset>
<button type="submit">CALCULAR MAPA ASTRAL</button>
</form>
<div id="resultado"><pre id="textoResultado"></pre></div>
</div>
<script>
const now = new Date();
for (const [id, v] of [["dia", now.getDate()], ["mes", now.getMonth()+1],
    ["ano", now.getFullYear()], ["hora", now.getHours()],
    ["minuto", now.getMinutes()], ["segundo", now.getSeconds()]]) {
  document.getElementById(id).value = v;
}

document.getElementById("cidade").addEventListener("input", async (e) => {
  const q = e.target.value;
  const div = document.getElementById("cidades");
  if (q.length < 2) { div.style.display = "none"; return; }
  const res = await fetch("/api/cidades?q=" + encodeURIComponent(q));
  const list = await res.json();
  div.innerHTML = "";
  for (const c of list) {
    const item = document.createElement("div");
    item.className = "cidade-item";
    item.textContent = c.city + ", " + c.state + " - " + c.country;
    item.onclick = () => {
      document.getElementById("cidade").value = c.city;
      document.getElementById("estado").value = c.state;
      document.getElementById("latitude").value = c.lat.toFixed(2);
      document.getElementById("longitude").value = c.lon.toFixed(2);
      document.getElementById("timezone").value = c.tz.toFixed(1);
      div.style.display = "none";
    };
    div.appendChild(item);
  }
  div.style.display = list.length ? "block" : "none";
});

document.getElementById("mapForm").addEventListener("submit", async (e) => {
  e.preventDefault();
  const num = id => parseInt(document.getElementById(id).value);
  const body = {
    nome: document.getElementById("nome").value,
    dia: num("dia"), mes: num("mes"), ano: num("ano"),
    hora: num("hora"), minuto: num("minuto"), segundo: num("segundo"),
    latitude: parseFloat(document.getElementById("latitude").value),
    longitude: parseFloat(document.getElementById("longitude").value),
    timezone: parseFloat(document.getElementById("timezone").value),
    cidade: document.getElementById("cidade").value,
    estado: document.getElementById("estado").value
  };
  const res = await fetch("/api/calcular", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(body)
  });
  const json = await res.json();
  if (json.status === "ok") {
    document.getElementById("textoResultado").textContent = json.relatorio;
    document.getElementById("resultado").style.display = "block";
  } else {
    alert("Erro: " + json.msg);
  }
});
</script>
</body>
</html>
`
