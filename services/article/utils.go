package article

import articleRepo "pressroom/database/repository/article"

func listByAuthorQuery(authorID string) articleRepo.ArticleQuery {
	return articleRepo.ArticleQuery{AuthorID: authorID}
}

func listByStatusQuery(status string) articleRepo.ArticleQuery {
	return articleRepo.ArticleQuery{Status: status}
}
