package knowledge

import "chatbot/internal/domain"

// Fallback returns the canned knowledge base used when extraction
// yields nothing or initialization fails. It guarantees the engine
// always has something to retrieve from.
func Fallback() []domain.Document {
	return []domain.Document{
		{
			ID:       DocPersonalInfo,
			Content:  "Mariano Fresno es un desarrollador full-stack y líder técnico con experiencia en desarrollo web, hardware y software. Nació el 29 de enero de 1986 en Buenos Aires, Argentina.",
			Keywords: []string{"personal", "información", "datos", "biografía", "perfil"},
		},
		{
			ID:       DocSkills,
			Content:  "Habilidades técnicas: Backend (90%) - PHP, Python, Java, C#/C++, Node.js. Frontend (65%) - JS, Vue.js, Angular, React. DevOps (60%) - Docker, Kubernetes, LAMBDAS, Puppet, Terraform, Jenkins. Testing unitario (85%) - xUnit, Mocks, Gherkin. IoT (70%) - Arduino, Raspberry Pi. Liderazgo (55%) - Management, hiring, estimation, mentoring.",
			Keywords: []string{"habilidades", "tecnologías", "programación", "skills", "conocimientos"},
		},
		{
			ID:       DocContact,
			Content:  "Información de contacto: Email: mnofresno@gmail.com. Teléfono: +54 9 11-6250-2232. LinkedIn: https://ln.fresno.ar. GitHub: https://github.com/mnofresno. Twitter: https://tw.fresno.ar. WhatsApp: https://wa.me/5491162502232.",
			Keywords: []string{"contacto", "email", "teléfono", "linkedin", "github", "whatsapp", "phone", "correo", "mail"},
		},
		{
			ID:       DocSocial,
			Content:  "Enlaces sociales: LinkedIn: https://ln.fresno.ar, GitHub: https://github.com/mnofresno, Twitter: https://tw.fresno.ar, WhatsApp: https://wa.me/5491162502232, Cults3D: https://cults3d.com/en/users/mnofresno/3d-models",
			Keywords: []string{"redes", "sociales", "linkedin", "github", "twitter", "whatsapp", "cults3d"},
		},
		{
			ID:       DocServices,
			Content:  "Servicios ofrecidos: Desarrollo de equipos técnicos, desarrollo de software, optimización de rendimiento, análisis técnico, capacitación y entrenamiento, hosting y servicios web. Especializado en soluciones end-to-end, definición de estándares de calidad, automatización de procesos, code review, estimaciones técnicas y selección de personal técnico.",
			Keywords: []string{"servicios", "ofrecimientos", "consultoría", "desarrollo"},
		},
	}
}
