package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, "app.name", "Deep Thoughts")
	message.SetString(lang, "app.tagline", "Conheça sua nova rede social para pensamentos de verdade.")
	message.SetString(lang, "footer.credit", "Feito com ❤️ pela equipe Deep Thoughts.")

	message.SetString(lang, "nav.me", "Eu")
	message.SetString(lang, "nav.logout", "Sair")
	message.SetString(lang, "nav.login", "Entrar")
	message.SetString(lang, "nav.signup", "Cadastrar")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	message.SetString(lang, "title.home", "Início")
	message.SetString(lang, "home.feed_heading", "Alimento para o pensamento...")
	message.SetString(lang, "home.no_thoughts", "Nenhum pensamento ainda")
	message.SetString(lang, "thought.form.placeholder", "Escreva um novo pensamento...")
	message.SetString(lang, "thought.form.count", "Caracteres: %d/280")
	message.SetString(lang, "thought.on", "pensou em %s")
	message.SetString(lang, "thought.reactions", "Reações: %d || Clique para reagir e entrar na conversa!")
	message.SetString(lang, "thought.start_discussion", "Comece a conversa!")
	message.SetString(lang, "thought.invalid", "Um pensamento precisa ter entre 1 e 280 caracteres.")
	message.SetString(lang, "reaction.invalid", "Uma reação precisa ter entre 1 e 280 caracteres.")
	message.SetString(lang, "form.submit", "Enviar")

	message.SetString(lang, "friends.none", "%s, faça alguns amigos!")
	message.SetString(lang, "friends.heading", "%s tem %d amigos")

	message.SetString(lang, "title.profile", "Perfil")
	message.SetString(lang, "profile.viewing", "Vendo o perfil de %s.")
	message.SetString(lang, "profile.viewing_own", "Vendo seu perfil.")
	message.SetString(lang, "profile.thoughts", "Pensamentos de %s...")
	message.SetString(lang, "profile.own_thoughts", "Seus pensamentos...")
	message.SetString(lang, "profile.add_friend", "Adicionar amigo")
	message.SetString(lang, "profile.add_friend_failed", "Não foi possível adicionar este amigo.")
	message.SetString(lang, "profile.login_required", "Você precisa estar logado para ver isto. Use os links acima para se cadastrar ou entrar!")

	message.SetString(lang, "title.thought", "Pensamento")
	message.SetString(lang, "reaction.placeholder", "Deixe uma reação a este pensamento...")
	message.SetString(lang, "reaction.heading", "Reações")

	message.SetString(lang, "title.login", "Entrar")
	message.SetString(lang, "title.signup", "Cadastro")
	message.SetString(lang, "auth.username", "Seu nome de usuário")
	message.SetString(lang, "auth.email", "Seu email")
	message.SetString(lang, "auth.password", "******")
	message.SetString(lang, "auth.login_failed", "Falha ao entrar")
	message.SetString(lang, "auth.signup_failed", "Falha no cadastro")
	message.SetString(lang, "auth.fields_required", "Todos os campos são obrigatórios.")

	message.SetString(lang, "title.not_found", "Não encontrado")
	message.SetString(lang, "not_found.heading", "Ops, não encontramos essa página.")
	message.SetString(lang, "not_found.back", "Voltar ao início")
	message.SetString(lang, "title.error", "Algo deu errado")
	message.SetString(lang, "error.status", "Erro %d")
	message.SetString(lang, "error.unavailable", "O serviço de pensamentos está indisponível. Tente novamente em instantes.")
	message.SetString(lang, "error.unauthorized", "Sua sessão terminou. Entre novamente.")
	message.SetString(lang, "error.generic", "Algo deu errado. Tente novamente.")
}
