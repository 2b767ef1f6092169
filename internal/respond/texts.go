package respond

import "chatbot/internal/domain"

// Canned response texts. The site's own voice is Spanish; only the
// texts the widget localized (fallback, error, CV lead-ins and the
// retrieval paraphrase prefix) carry both locales.
const (
	greetingText = "¡Hola! Soy el asistente virtual de Mariano Fresno. Puedo ayudarte con información sobre sus habilidades, servicios, experiencia y datos de contacto. ¿En qué puedo ayudarte?"

	kubernetesConfirmedText = "Sí, Mariano tiene experiencia con Kubernetes. Según su perfil, tiene conocimientos en DevOps (60%) que incluyen Docker, Kubernetes, LAMBDAS, Puppet, Terraform y Jenkins."
	kubernetesGenericText   = "Mariano tiene experiencia en DevOps que incluye tecnologías como Docker, Kubernetes, LAMBDAS, Puppet, Terraform y Jenkins. Su nivel de experiencia en DevOps es del 60%."
	dockerText              = "Sí, Mariano tiene experiencia con Docker. Es parte de sus habilidades en DevOps (60%) junto con Kubernetes, LAMBDAS, Puppet, Terraform y Jenkins."
	backendText             = "Sí, Mariano tiene experiencia con esas tecnologías. Su especialidad en Backend (90%) incluye PHP, Python, Java, C#/C++ y Node.js."
	frontendText            = "Sí, Mariano tiene experiencia con esos frameworks. Su experiencia en Frontend (65%) incluye JS, Vue.js, Angular y React."

	phoneText = "El teléfono de Mariano es +54 9 11-6250-2232.<br>También puedes contactarlo por:<br>"
	emailText = "El email de Mariano es mnofresno@gmail.com. También puedes contactarlo por LinkedIn: https://ln.fresno.ar o por WhatsApp: https://wa.me/5491162502232"

	contactHeaderText = "Puedes contactar a Mariano por:<br>• Email: mnofresno@gmail.com<br>• Teléfono: +54 9 11-6250-2232<br>• LinkedIn: https://ln.fresno.ar<br>• GitHub: https://github.com/mnofresno<br>"

	defaultGreetingMessage = "Hola Mariano!"
)

var paraphrasePrefix = map[domain.Locale]string{
	domain.LocaleES: "Basándome en la información disponible: ",
	domain.LocaleEN: "Based on the available information: ",
}

// Fallback carries a %s for the quoted query and a %s for the CTA.
var fallbackTexts = map[domain.Locale]string{
	domain.LocaleES: "No tengo información específica sobre \"%s\".<br>Pero puedes <b>enviarme un WhatsApp</b> y te responderé directamente:<br>%s",
	domain.LocaleEN: "I don't have specific information about \"%s\".<br>But you can <b>send me a WhatsApp</b> and I'll respond directly:<br>%s",
}

var errorTexts = map[domain.Locale]string{
	domain.LocaleES: "Lo siento, hubo un error procesando tu consulta. Por favor, intenta de nuevo.",
	domain.LocaleEN: "Sorry, there was an error processing your query. Please try again.",
}

var cvLeadInTexts = map[domain.Locale]string{
	domain.LocaleES: "Aquí tienes el CV que mejor se ajusta a tu búsqueda:",
	domain.LocaleEN: "Here is the CV that best matches your search:",
}

// CV fallback when no catalog exists at all; %s is the releases URL.
var cvReleasesTexts = map[domain.Locale]string{
	domain.LocaleES: "Puedes descargar los CVs de Mariano desde <a href='%s' target='_blank' rel='noopener noreferrer'>GitHub Releases</a>.",
	domain.LocaleEN: "You can download Mariano's CVs from <a href='%s' target='_blank' rel='noopener noreferrer'>GitHub Releases</a>.",
}

// localized picks the text for loc, falling back to Spanish like the
// original widget did for unknown locales.
func localized(texts map[domain.Locale]string, loc domain.Locale) string {
	if t, ok := texts[loc]; ok {
		return t
	}
	return texts[domain.LocaleES]
}

// ErrorText is the user-visible string for unrecoverable query
// processing failures.
func ErrorText(loc domain.Locale) string {
	return localized(errorTexts, loc)
}
